// Command createuser creates a timeline login or resets its password.
//
// Usage:
//
//	createuser --username=alice [--reset]
//
// The password is read from LIFELOG_PASSWORD.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres"
	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/user"
	"github.com/heartmarshall/lifelog-timeline/internal/app"
	"github.com/heartmarshall/lifelog-timeline/internal/config"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

func main() {
	username := flag.String("username", "", "login name")
	reset := flag.Bool("reset", false, "replace the password of an existing user")
	flag.Parse()

	password := os.Getenv("LIFELOG_PASSWORD")
	if *username == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Usage: LIFELOG_PASSWORD=... createuser --username=alice [--reset]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	users := user.New(pool)

	created, err := users.Create(ctx, &domain.User{Username: *username, PasswordHash: string(hash)})
	switch {
	case err == nil:
		logger.Info("user created", slog.String("username", created.Username), slog.String("id", created.ID.String()))
	case errors.Is(err, domain.ErrAlreadyExists) && *reset:
		existing, err := users.GetByUsername(ctx, *username)
		if err != nil {
			logger.Error("load user", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := users.UpdatePassword(ctx, existing.ID, string(hash)); err != nil {
			logger.Error("reset password", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("password reset", slog.String("username", *username))
	case errors.Is(err, domain.ErrAlreadyExists):
		logger.Error("user already exists; pass --reset to replace the password", slog.String("username", *username))
		os.Exit(1)
	default:
		logger.Error("create user", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
