package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gian-ai/assistant-be/internal/api"
	"github.com/gian-ai/assistant-be/internal/chat"
	"github.com/gian-ai/assistant-be/internal/config"
	"github.com/gian-ai/assistant-be/internal/logger"
	"github.com/gian-ai/assistant-be/internal/mailer"
	"github.com/gian-ai/assistant-be/internal/storage"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up the in-memory entity store. All conversation history,
	// reminders, and settings live here and reset on restart.
	store := storage.NewMemStorage()

	// Set up the completion provider
	completer := chat.NewAnthropicCompleter(cfg.AnthropicModel)

	// Set up the mail relay
	smtpMailer, err := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	if err != nil {
		log.Fatalf("Failed to initialize SMTP mailer: %v", err)
	}

	// Set up router
	router := api.NewRouter(store, completer, smtpMailer, cfg.FrontendOrigin)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
