package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/service"
	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/storage"
	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/transport/http/middleware"
	"github.com/ayaSaleh717/fullstack-chat-app-master/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	blobStore   storage.BlobStore
}

func NewAuthHandler(authService *service.AuthService, blobStore storage.BlobStore) *AuthHandler {
	return &AuthHandler{authService: authService, blobStore: blobStore}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateSignup(input.FullName, input.Email, input.Password); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.authService.Signup(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "EMAIL_TAKEN", "Email is already registered")
		} else {
			log.Printf("ERROR signup: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateLogin(input.Email, input.Password); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		} else {
			log.Printf("ERROR login: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Logout exists for API symmetry. Tokens are bearer-style and stateless, so
// discarding them is the client's job.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Check returns the profile behind the presented token.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR auth check: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input struct {
		ProfilePic string `json:"profile_pic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if input.ProfilePic == "" {
		writeError(w, http.StatusBadRequest, "MISSING_IMAGE", "Profile picture is required")
		return
	}

	url, err := h.blobStore.Upload(r.Context(), input.ProfilePic)
	if err != nil {
		writeUploadError(w, err)
		return
	}

	user, err := h.authService.UpdateProfilePic(r.Context(), userID, url)
	if err != nil {
		log.Printf("ERROR update profile: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func writeUploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrUploadTooLarge):
		writeError(w, http.StatusBadRequest, "IMAGE_TOO_LARGE", "Image size should be less than 5MB")
	case errors.Is(err, storage.ErrNotAnImage), errors.Is(err, storage.ErrInvalidImageData):
		writeError(w, http.StatusBadRequest, "INVALID_IMAGE", "Invalid image format")
	case errors.Is(err, context.Canceled):
		// Client went away mid-upload; nothing useful to write.
	default:
		log.Printf("ERROR upload: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"code":   "VALIDATION_ERROR",
			"fields": errs,
		},
	})
}
