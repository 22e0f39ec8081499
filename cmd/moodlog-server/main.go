package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/moodlog/internal/api"
	"github.com/terraincognita07/moodlog/internal/cli"
	"github.com/terraincognita07/moodlog/internal/db"
	"go.uber.org/zap"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := newRootCommand(log).Execute(); err != nil {
		log.Error("moodlog-server failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func newRootCommand(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "moodlog-server",
		Short:         "Reference calendar store for the moodlog client.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(log)
		},
	}

	var email string
	reset := &cobra.Command{
		Use:   "reset-password",
		Short: "Replace a user's password with a temporary one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunResetPasswordCommand(databasePath(), email, cmd.OutOrStdout(), log)
		},
	}
	reset.Flags().StringVar(&email, "email", "", "account email")
	_ = reset.MarkFlagRequired("email")
	cmd.AddCommand(reset)

	return cmd
}

func serve(log *zap.Logger) error {
	location := mustLoadLocation(getEnv("TZ", "UTC"), log)
	time.Local = location

	secretKey, err := resolveSecretKey()
	if err != nil {
		return err
	}
	port, err := resolvePort()
	if err != nil {
		return err
	}
	dbPath := databasePath()

	database, err := db.OpenSQLite(dbPath, log)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	handler, err := api.NewHandler(database, secretKey)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Warn("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("moodlog-server listening",
		zap.String("addr", "0.0.0.0:"+port),
		zap.String("db", dbPath),
		zap.String("tz", location.String()),
	)
	if err := app.Listen(":" + port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "moodlog",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func databasePath() string {
	return getEnv("DB_PATH", filepath.Join("data", "moodlog.db"))
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses a placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("PORT must be between 1 and 65535, got %q", raw)
	}
	return strconv.Itoa(port), nil
}

func mustLoadLocation(name string, log *zap.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Warn("invalid TZ, falling back to UTC", zap.String("tz", name))
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
