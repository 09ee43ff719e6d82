// seed-users создаёт сотрудников бэк-офиса из SEED_USERS
// ("12345678901:secret,10987654321:secret2"). Существующие пропускаются.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pribylovaa/bank-backoffice/internal/config"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/redact"
	"github.com/pribylovaa/bank-backoffice/internal/service"
	"github.com/pribylovaa/bank-backoffice/internal/storage/postgres"
	"github.com/pribylovaa/bank-backoffice/internal/token"
)

type seedUser struct {
	username string
	password string
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	users := parseSeedUsers(os.Getenv("SEED_USERS"))
	if len(users) == 0 {
		log.Warn("seed_users_empty", slog.String("hint", "set SEED_USERS=username:password,..."))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	storage, err := postgres.New(ctx, cfg.DB.DatabaseURL)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	// Signup не обращается к хранилищу сессий.
	svc := service.New(storage, nil, token.New(cfg.Auth), cfg.Auth)

	var failed int
	for _, u := range users {
		user := slog.String("username", redact.NationalID(u.username))

		id, err := svc.Signup(ctx, u.username, u.password)
		switch {
		case errors.Is(err, service.ErrUserExists):
			log.Info("seed_user_exists", user)
		case err != nil:
			failed++
			log.Error("seed_user_failed", user, slog.String("err", err.Error()))
		default:
			log.Info("seed_user_created", user, slog.String("user_id", id.String()))
		}
	}

	if failed > 0 {
		storage.Close()
		os.Exit(1)
	}
}

func parseSeedUsers(s string) []seedUser {
	var out []seedUser
	for _, item := range strings.Split(s, ",") {
		name, pass, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok || name == "" || pass == "" {
			continue
		}
		out = append(out, seedUser{username: strings.TrimSpace(name), password: pass})
	}
	return out
}
