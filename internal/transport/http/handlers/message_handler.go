package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/service"
	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/storage"
	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/transport/http/middleware"
)

type MessageHandler struct {
	messageService *service.MessageService
	blobStore      storage.BlobStore
}

func NewMessageHandler(messageService *service.MessageService, blobStore storage.BlobStore) *MessageHandler {
	return &MessageHandler{messageService: messageService, blobStore: blobStore}
}

// Send accepts text and/or a base64 image. The image is resolved to a URL
// first; the relay itself only ever sees the resolved URL.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	senderID := middleware.GetUserID(r.Context())
	receiverID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid receiver ID")
		return
	}

	var input struct {
		Text  string `json:"text"`
		Image string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	var imageURL string
	if input.Image != "" {
		imageURL, err = h.blobStore.Upload(r.Context(), input.Image)
		if err != nil {
			writeUploadError(w, err)
			return
		}
	}

	msg, err := h.messageService.SendMessage(r.Context(), senderID, receiverID, input.Text, imageURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			writeError(w, http.StatusBadRequest, "EMPTY_MESSAGE", "Message must have text or an image")
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Receiver not found")
		default:
			log.Printf("ERROR send message: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

// History returns the full conversation with the user in the path.
func (h *MessageHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	otherID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	messages, err := h.messageService.GetHistory(r.Context(), userID, otherID)
	if err != nil {
		log.Printf("ERROR get history: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// Inbox returns the sidebar view: every other user with the last shared
// message, most recent conversations first.
func (h *MessageHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	entries, err := h.messageService.GetInbox(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR get inbox: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
