// Command notifier is the desktop companion: it signs a single user in by
// email, runs one wide-window check immediately, then keeps polling the
// user's pending records in the background and surfaces a notification for
// each one whose due date falls inside the lookahead window.
package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"

	"github.com/student-tracker/tracker-service/internal/config"
	"github.com/student-tracker/tracker-service/internal/events"
	"github.com/student-tracker/tracker-service/internal/repositories/postgres"
	"github.com/student-tracker/tracker-service/internal/services"
	"github.com/student-tracker/tracker-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Notifier.UserEmail == "" {
		log.Fatal("NOTIFIER_USER_EMAIL is required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, running without cache", "error", err)
		}
	}

	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{
		DB:          db,
		RedisClient: redisClient,
	})
	if err := repoManager.Initialize(); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}
	repo := repoManager.GetRepository()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Sign-in step: the companion acts on behalf of one configured user.
	user, err := repo.User().GetByEmail(ctx, nil, cfg.Notifier.UserEmail)
	if err != nil {
		log.Fatalf("Failed to resolve user %q: %v", cfg.Notifier.UserEmail, err)
	}

	pubSub := events.NewGoChannelPubSub(logger)
	watcher := services.NewWatcherService(repo, pubSub, logger)

	// Local delivery: consume the events the watcher publishes and show them.
	messages, err := pubSub.Subscribe(ctx)
	if err != nil {
		log.Fatalf("Failed to subscribe to notifications: %v", err)
	}
	go deliverNotifications(logger, messages)

	logger.Info("Notifier started",
		"user", user.Email,
		"poll_interval", cfg.Notifier.PollInterval,
		"poll_window_hours", cfg.Notifier.PollWindowHours)

	// Startup notification so the user sees the companion is watching.
	startup := events.NotificationEvent{
		ID:        watermill.NewUUID(),
		RecordKey: "system:startup",
		OwnerID:   user.ID,
		Title:     "Notifications enabled",
		Body:      "You will be reminded about upcoming deadlines.",
		EmittedAt: time.Now(),
	}
	if err := pubSub.PublishNotification(ctx, startup); err != nil {
		logger.Error("Failed to publish startup notification", "error", err)
	}

	// Sign-in check uses the wider window so nothing due in the next two
	// days slips past a user who only opens the app occasionally.
	loginWindow := time.Duration(cfg.Notifier.LoginWindowHours) * time.Hour
	if emitted, err := watcher.Scan(ctx, user.ID, time.Now(), loginWindow); err != nil {
		logger.Error("Sign-in scan failed", "error", err)
	} else {
		logger.Info("Sign-in scan complete", "notifications", emitted)
	}

	pollWindow := time.Duration(cfg.Notifier.PollWindowHours) * time.Hour
	ticker := time.NewTicker(cfg.Notifier.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notifier shutting down")
			if err := pubSub.Close(); err != nil {
				logger.Error("Failed to close pub/sub", "error", err)
			}
			if err := repoManager.Shutdown(context.Background()); err != nil {
				logger.Error("Failed to shutdown repositories", "error", err)
			}
			return
		case <-ticker.C:
			if emitted, err := watcher.Scan(ctx, user.ID, time.Now(), pollWindow); err != nil {
				logger.Error("Poll scan failed", "error", err)
			} else if emitted > 0 {
				logger.Info("Poll scan complete", "notifications", emitted)
			}
		}
	}
}

// deliverNotifications drains the event stream and renders each event as a
// user-facing notification line. The same record keeps firing on every scan
// while it stays due soon; there is no suppression here.
func deliverNotifications(logger *slog.Logger, messages <-chan *message.Message) {
	for msg := range messages {
		var event events.NotificationEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			logger.Error("Failed to decode notification event", "error", err)
			msg.Ack()
			continue
		}

		attrs := []any{"title", event.Title, "body", event.Body}
		if !event.DueDate.IsZero() {
			attrs = append(attrs, "due", event.DueDate.Format("Jan 2, 2006 3:04 PM"))
		}
		logger.Info("NOTIFICATION", attrs...)
		msg.Ack()
	}
}
