package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	req := require.New(t)
	userRepo := &fakeUserRepo{}
	svc := NewAuthService(userRepo, "test-secret")

	resp, err := svc.Signup(context.Background(), SignupInput{
		FullName: "Alice Waters",
		Email:    "alice@test.local",
		Password: "hunter22",
	})

	req.NoError(err)
	req.NotEmpty(resp.AccessToken)
	req.Equal("Alice Waters", resp.User.FullName)
	// The stored hash is never the raw password
	req.NotEqual("hunter22", resp.User.PasswordHash)

	login, err := svc.Login(context.Background(), LoginInput{
		Email:    "alice@test.local",
		Password: "hunter22",
	})
	req.NoError(err)
	req.Equal(resp.User.ID, login.User.ID)
	req.NotEmpty(login.AccessToken)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	req := require.New(t)
	userRepo := &fakeUserRepo{}
	svc := NewAuthService(userRepo, "test-secret")

	_, err := svc.Signup(context.Background(), SignupInput{
		FullName: "Alice", Email: "alice@test.local", Password: "hunter22",
	})
	req.NoError(err)

	_, err = svc.Signup(context.Background(), SignupInput{
		FullName: "Other Alice", Email: "alice@test.local", Password: "hunter23",
	})
	req.ErrorIs(err, ErrEmailTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	req := require.New(t)
	userRepo := &fakeUserRepo{}
	svc := NewAuthService(userRepo, "test-secret")

	_, err := svc.Signup(context.Background(), SignupInput{
		FullName: "Alice", Email: "alice@test.local", Password: "hunter22",
	})
	req.NoError(err)

	_, err = svc.Login(context.Background(), LoginInput{
		Email: "alice@test.local", Password: "wrong",
	})
	req.ErrorIs(err, ErrInvalidCreds)
}

func TestLogin_UnknownEmail(t *testing.T) {
	req := require.New(t)
	svc := NewAuthService(&fakeUserRepo{}, "test-secret")

	_, err := svc.Login(context.Background(), LoginInput{
		Email: "nobody@test.local", Password: "whatever",
	})
	req.ErrorIs(err, ErrInvalidCreds)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	req := require.New(t)

	hash, err := hashPassword("s3cret-pass")
	req.NoError(err)
	req.True(verifyPassword("s3cret-pass", hash))
	req.False(verifyPassword("s3cret-pasS", hash))
	req.False(verifyPassword("s3cret-pass", "not-a-valid-encoding"))

	// Same password, fresh salt, different encoding
	hash2, err := hashPassword("s3cret-pass")
	req.NoError(err)
	req.NotEqual(hash, hash2)
}
