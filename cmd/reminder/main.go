package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/tasker-otp/internal/application/reminder"
	"github.com/tasker-otp/internal/config"
	"github.com/tasker-otp/internal/domain"
	"github.com/tasker-otp/internal/infrastructure/sns"
	"github.com/tasker-otp/internal/infrastructure/sqlite"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:   "reminder",
		Usage:  "Summarize incomplete tasks whenever the device is unlocked (events are read from stdin)",
		Flags:  flags(),
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("reminder stopped", "err", err)
		os.Exit(1)
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Value:   sqlite.DefaultDBName,
			Usage:   "path to the task database",
			Sources: cli.EnvVars("REMINDER_DB_PATH"),
		},
		&cli.DurationFlag{
			Name:    "cooldown",
			Value:   reminder.DefaultCooldown,
			Usage:   "minimum gap between two summaries (negative disables)",
			Sources: cli.EnvVars("REMINDER_COOLDOWN"),
		},
		&cli.StringFlag{
			Name:    "topic-arn",
			Usage:   "SNS topic for summaries; empty logs them instead",
			Sources: cli.EnvVars("REMINDER_SNS_TOPIC_ARN"),
		},
		&cli.StringFlag{
			Name:    "aws-region",
			Value:   "us-east-1",
			Sources: cli.EnvVars("AWS_REGION"),
		},
		&cli.StringFlag{
			Name:    "aws-endpoint-url",
			Usage:   "override the SNS endpoint (LocalStack)",
			Sources: cli.EnvVars("AWS_ENDPOINT_URL"),
		},
		&cli.StringFlag{
			Name:    "aws-access-key-id",
			Sources: cli.EnvVars("AWS_ACCESS_KEY_ID"),
		},
		&cli.StringFlag{
			Name:    "aws-secret-access-key",
			Sources: cli.EnvVars("AWS_SECRET_ACCESS_KEY"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "debug, info, warn or error",
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "text",
			Usage:   "text or json",
			Sources: cli.EnvVars("LOG_FORMAT"),
		},
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log := setupLogger(cmd.String("log-level"), cmd.String("log-format"))

	cfg := config.Reminder{
		DBPath:         cmd.String("db"),
		Cooldown:       cmd.Duration("cooldown"),
		SNSTopicARN:    cmd.String("topic-arn"),
		AWSRegion:      cmd.String("aws-region"),
		AWSEndpointURL: cmd.String("aws-endpoint-url"),
		AWSAccessKeyID: cmd.String("aws-access-key-id"),
		AWSSecretKey:   cmd.String("aws-secret-access-key"),
	}

	var notifier reminder.Notifier = reminder.LogNotifier{Logger: log}
	if cfg.SNSTopicARN != "" {
		n, err := sns.NewNotifier(ctx, cfg)
		if err != nil {
			return err
		}
		notifier = n
	}

	svc := reminder.NewService(reminder.ServiceDeps{
		Counter:  sqlite.NewTaskStore(cfg.DBPath),
		Notifier: notifier,
		Cooldown: cfg.Cooldown,
		Logger:   log,
	})

	events := make(chan domain.Event)
	go func() {
		if err := reminder.ReadEvents(ctx, os.Stdin, events, log); err != nil {
			log.Error("read events", "err", err)
		}
	}()

	log.Info("reminder relay started", "db", cfg.DBPath, "sns", cfg.SNSTopicARN != "")
	return svc.Run(ctx, events)
}

func setupLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: lvl, TimeFormat: time.Kitchen})
	}
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}
