package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/wojtuswowo/charity-connect-rbac/internal/config"
	"github.com/wojtuswowo/charity-connect-rbac/internal/db"
	"github.com/wojtuswowo/charity-connect-rbac/internal/handlers"
	"github.com/wojtuswowo/charity-connect-rbac/internal/middleware"
	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/service"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.Debug {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	database, err := db.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}

	accounts := service.NewAccounts(database, log)
	projects := service.NewProjects(database, log)
	offers := service.NewOffers(database, database, database, cfg.UploadBaseURL, log)
	applications := service.NewApplications(database, database, log)
	ratings := service.NewRatings(database, database, log)
	inquiries := service.NewInquiries(database, log)

	h := handlers.New(accounts, projects, offers, applications, ratings, inquiries, store, log)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Public pages
	r.Get("/", h.Home)
	r.Get("/guest", h.GuestDashboard)
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.RegisterSubmit)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.LoginSubmit)
	r.Get("/logout", h.Logout)
	r.Post("/inquiries", h.SubmitInquiry)

	// Authenticated pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(store))

		r.Get("/dashboard", h.Dashboard)
		r.Get("/profile", h.Profile)

		r.Post("/offers", h.CreateOffer)
		r.Get("/offers/{id}", h.OfferDetail)
		r.Post("/offers/{id}/edit", h.EditOffer)
		r.Post("/offers/{id}/delete", h.DeleteOffer)
		r.Post("/offers/{id}/apply", h.Apply)
		r.Post("/offers/{id}/attachments", h.AddAttachment)
		r.Get("/offers/{id}/manage", h.ManageOffer)
		r.Post("/applications/{id}/accept", h.AcceptApplication)
		r.Post("/rate/{id}", h.Rate)
	})

	// Worker panel
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(store, models.RoleWorker, models.RoleAdministrator))

		r.Get("/worker/pending-users", h.PendingUsers)
		r.Post("/worker/users/{id}/approve", h.ApproveUser)
		r.Get("/worker/pending-offers", h.PendingOffers)
		r.Post("/worker/offers/{id}/approve", h.ApproveOffer)
		r.Post("/worker/offers/{id}/reject", h.RejectOffer)
		r.Post("/worker/projects", h.CreateProject)
		r.Post("/worker/projects/{id}/edit", h.EditProject)
		r.Post("/worker/projects/{id}/finish", h.FinishProject)
	})

	// Admin panel
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(store, models.RoleAdministrator))

		r.Get("/admin/create-worker", h.CreateWorkerPage)
		r.Post("/admin/create-worker", h.CreateWorkerSubmit)
	})

	log.Info().Str("addr", cfg.Addr).Msg("server starting")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
