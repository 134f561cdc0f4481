package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/influenxers/coachbot/internal/augment"
	"github.com/influenxers/coachbot/internal/bot"
	"github.com/influenxers/coachbot/internal/config"
	"github.com/influenxers/coachbot/internal/handler"
	"github.com/influenxers/coachbot/internal/imagegen"
	"github.com/influenxers/coachbot/internal/schedule"
	"github.com/influenxers/coachbot/internal/session"
	"github.com/influenxers/coachbot/internal/template"
	"github.com/influenxers/coachbot/internal/transport/discord"
)

const (
	sessionFlushInterval = 5 * time.Minute
	sessionSweepInterval = 24 * time.Hour
	imageSweepInterval   = 24 * time.Hour
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Session store: load saved profiles, flush periodically, evict daily.
	sessions := session.NewStore(cfg.Session.File)
	sessions.Load()
	go sessions.RunFlushLoop(ctx, sessionFlushInterval)
	go sessions.RunEvictionLoop(ctx, sessionSweepInterval, session.DefaultRetention)

	// Image generation is optional; without it cards go out text-only.
	var aug *augment.Augmenter
	if cfg.Images.Enabled {
		cache, err := imagegen.NewCache(cfg.Images.Dir)
		if err != nil {
			log.Fatalf("failed to prepare image cache: %v", err)
		}
		provider, err := imagegen.NewGenAIProvider(ctx, cfg.Images.APIKey, cfg.Images.Model)
		if err != nil {
			log.Printf("warning: image generation unavailable: %v", err)
			aug = augment.New(nil, nil, false)
		} else {
			aug = augment.New(provider, cache, true)
			go cache.RunCleanupLoop(ctx, imageSweepInterval, imagegen.DefaultRetention)
			log.Println("Image generation enabled")
		}
	} else {
		aug = augment.New(nil, nil, false)
		log.Println("Image generation disabled by configuration")
	}

	scheduler := schedule.New()
	defer scheduler.Stop()

	svc := bot.NewService(template.NewStore(cfg.Content.Dir), sessions, aug, scheduler)

	gateway, err := discord.New(cfg.Discord.Token, cfg.Discord.ChannelIDs, svc)
	if err != nil {
		log.Fatalf("failed to create discord gateway: %v", err)
	}
	if err := gateway.Open(); err != nil {
		log.Fatalf("failed to connect to discord: %v", err)
	}
	defer gateway.Close()

	router := handler.NewRouter(svc, sessions)
	startServer(ctx, cfg.Server, router)

	// Persist whatever changed since the last tick before exiting.
	sessions.Flush()
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Coach bot API listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
