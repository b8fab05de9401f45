package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hyprnurture/internal/app"
	"hyprnurture/internal/config"
	"hyprnurture/internal/handler"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()})))

	a := app.New(cfg)

	outreachHandler := handler.NewOutreachHandler(a.News, a.Company, a.Generator)
	draftHandler := handler.NewDraftHandler()
	emailHandler := handler.NewEmailHandler(a.Mailer)

	r := gin.Default()

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
	if cfg.Server.FrontendURL == "" || cfg.Server.FrontendURL == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", cfg.Server.FrontendURL}
	}

	slog.Info("CORS configured", "all_origins", corsConfig.AllowAllOrigins, "urls", corsConfig.AllowOrigins)

	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	api.POST("/news", outreachHandler.GetNews)
	api.GET("/company-info", outreachHandler.GetCompanyInfo)
	api.POST("/generate", outreachHandler.Generate)
	api.POST("/save-draft", draftHandler.SaveDraft)
	api.GET("/drafts", draftHandler.GetDrafts)
	api.GET("/health", outreachHandler.GetHealth)
	api.POST("/send-email-resend", emailHandler.SendEmail)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("error starting server: %v", err)
		}

	case sig := <-shutdown:
		slog.Info("server shutdown initiated", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("server shutdown failed", "error", err)
			return
		}

		slog.Info("server stopped")
	}
}
