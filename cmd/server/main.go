package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/config"
	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/database"
	postgresrepo "github.com/ayaSaleh717/fullstack-chat-app-master/internal/repository/postgres"
	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/service"
	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/storage"
	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/transport/http/handlers"
	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/transport/http/middleware"
	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/transport/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Database
	pool, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Blob store for message images and profile pictures
	blobStore, err := storage.NewDiskStore(cfg.UploadDir, cfg.BaseURL)
	if err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	messageRepo := postgresrepo.NewMessageRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	messageService := service.NewMessageService(messageRepo, userRepo)

	// WebSocket hub pushes new messages and presence changes
	hub := ws.NewHub()
	messageService.SetNotifier(ws.NewHubNotifier(hub))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, blobStore)
	messageHandler := handlers.NewMessageHandler(messageService, blobStore)

	auth := middleware.Auth(cfg.JWTSecret)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	// Public
	r.Post("/api/auth/signup", authHandler.Signup)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/logout", authHandler.Logout)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/api/auth/check", authHandler.Check)
		r.Put("/api/auth/update-profile", authHandler.UpdateProfile)

		r.Get("/api/messages/users", messageHandler.Inbox)
		r.Get("/api/messages/{id}", messageHandler.History)
		r.Post("/api/messages/send/{id}", messageHandler.Send)
	})

	// WebSocket (token via query param)
	r.Get("/ws", ws.ServeWS(hub, cfg.JWTSecret))

	// Uploaded images
	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", fs.ServeHTTP)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
