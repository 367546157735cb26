package api

import (
	"github.com/gian-ai/assistant-be/internal/api/handlers"
	"github.com/gian-ai/assistant-be/internal/chat"
	"github.com/gian-ai/assistant-be/internal/mailer"
	"github.com/gian-ai/assistant-be/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(store storage.Storage, completer chat.Completer, mail mailer.Mailer, frontendOrigin string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for the frontend dev server
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	messageHandler := handlers.NewMessageHandler(store, completer)
	reminderHandler := handlers.NewReminderHandler(store)
	settingHandler := handlers.NewSettingHandler(store)
	emailHandler := handlers.NewEmailHandler(mail)

	r.Route("/api", func(r chi.Router) {
		r.Route("/messages", func(r chi.Router) {
			r.Get("/", messageHandler.GetAll)
			r.Post("/", messageHandler.Create)
			r.Delete("/", messageHandler.Clear)
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", reminderHandler.GetAll)
			r.Post("/", reminderHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Patch("/", reminderHandler.Update)
				r.Delete("/", reminderHandler.Delete)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingHandler.GetAll)
			r.Put("/{key}", settingHandler.Put)
		})

		r.Post("/send-email", emailHandler.Send)
	})

	return r
}
