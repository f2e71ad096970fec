// Command create-admin bootstraps the administrator account. Every other
// account kind is created through the application itself.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/wojtuswowo/charity-connect-rbac/internal/auth"
	"github.com/wojtuswowo/charity-connect-rbac/internal/config"
	"github.com/wojtuswowo/charity-connect-rbac/internal/db"
	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal().Msg("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if err := auth.ValidatePassword(password); err != nil {
		log.Fatal().Err(err).Msg("invalid admin password")
	}

	ctx := context.Background()

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	admin, err := database.CreateAccount(ctx, models.Account{
		Email:        email,
		PasswordHash: hash,
		FirstName:    os.Getenv("ADMIN_FIRST_NAME"),
		LastName:     os.Getenv("ADMIN_LAST_NAME"),
		Role:         models.RoleAdministrator,
		IsApproved:   true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create administrator")
	}

	fmt.Printf("Administrator created: id=%d email=%s\n", admin.ID, admin.Email)
}
