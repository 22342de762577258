package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/slack-go/slack"

	"github.com/wis-software/huntflow-reloaded-bot/internal/config"
	"github.com/wis-software/huntflow-reloaded-bot/internal/handlers"
	"github.com/wis-software/huntflow-reloaded-bot/internal/huntflow"
	"github.com/wis-software/huntflow-reloaded-bot/internal/notifier"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	if cfg.HuntflowUserEmail == "" || cfg.HuntflowUserPassword == "" {
		log.Fatal("HUNTFLOW_USER_EMAIL and HUNTFLOW_USER_PASSWORD must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient := redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}

	huntflowClient := huntflow.New(cfg.HuntflowServerURL, huntflow.Credentials{
		Email:    cfg.HuntflowUserEmail,
		Password: cfg.HuntflowUserPassword,
	}, cfg.RequestTimeout)

	if err := huntflowClient.AcquireTokens(ctx); err != nil {
		log.Fatalf("Could not log into the management server: %v", err)
	}

	slackClient := slack.New(cfg.SlackBotToken)

	reminders := notifier.New(redisClient, slackClient, cfg.ChannelName, cfg.SlackReminderChannel)
	go func() {
		if err := reminders.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("ERROR: notifier stopped: %v", err)
		}
	}()

	handler := handlers.New(slackClient, huntflowClient, cfg.SlackSigningSecret, cfg.SlackReminderChannel)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{Addr: ":" + cfg.Port, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("ERROR: server shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}
