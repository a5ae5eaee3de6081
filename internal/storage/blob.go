package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const maxUploadBytes = 5 << 20 // 5MB, matches the client-side limit

var (
	ErrInvalidImageData = errors.New("invalid image data")
	ErrUploadTooLarge   = errors.New("image exceeds the 5MB limit")
	ErrNotAnImage       = errors.New("uploaded data is not an image")
)

// BlobStore turns a raw image payload into a durable URL. The relay never
// sees raw bytes; uploads are resolved before a send reaches it.
type BlobStore interface {
	Upload(ctx context.Context, dataURI string) (string, error)
}

// DiskStore writes uploads under a local directory served as static files.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Upload accepts a base64 data URI (or bare base64), sniffs the real content
// type and persists the bytes under a random name.
func (s *DiskStore) Upload(ctx context.Context, dataURI string) (string, error) {
	payload := dataURI
	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}
	if payload == "" {
		return "", ErrInvalidImageData
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > maxUploadBytes {
		return "", ErrUploadTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalidImageData
	}

	// Trust the bytes, not the declared media type.
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrNotAnImage
	}

	name := uuid.NewString() + mtype.Extension()
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}

	return s.baseURL + "/uploads/" + name, nil
}
