package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/service"
)

type Handler struct {
	Accounts     *service.AccountService
	Projects     *service.ProjectService
	Offers       *service.OfferService
	Applications *service.ApplicationService
	Ratings      *service.RatingService
	Inquiries    *service.InquiryService
	Store        *sessions.CookieStore
	Templates    *template.Template
	Log          zerolog.Logger
}

func New(
	accounts *service.AccountService,
	projects *service.ProjectService,
	offers *service.OfferService,
	applications *service.ApplicationService,
	ratings *service.RatingService,
	inquiries *service.InquiryService,
	store *sessions.CookieStore,
	log zerolog.Logger,
) *Handler {
	tmpl := template.Must(template.ParseGlob("templates/*.html"))
	return &Handler{
		Accounts:     accounts,
		Projects:     projects,
		Offers:       offers,
		Applications: applications,
		Ratings:      ratings,
		Inquiries:    inquiries,
		Store:        store,
		Templates:    tmpl,
		Log:          log,
	}
}

// currentAccount loads the logged-in account from the session. Returns nil
// without error when nobody is logged in.
func (h *Handler) currentAccount(r *http.Request) *models.Account {
	session, _ := h.Store.Get(r, "session")
	userID, ok := session.Values["user_id"].(int)
	if !ok {
		return nil
	}

	acct, err := h.Accounts.Get(r.Context(), userID)
	if err != nil {
		return nil
	}
	return &acct
}

// htmxError renders an inline error fragment into the #error target.
func htmxError(w http.ResponseWriter, msg string) {
	w.Header().Set("HX-Retarget", "#error")
	w.Header().Set("HX-Reswap", "innerHTML")
	w.Write([]byte(fmt.Sprintf(`<div class="text-red-600 text-sm">%s</div>`, template.HTMLEscapeString(msg))))
}

// serviceError maps a domain error to an HTTP response.
func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, models.ErrPermissionDenied):
		http.Error(w, "Permission denied", http.StatusForbidden)
	case errors.Is(err, models.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrDuplicateApplication),
		errors.Is(err, models.ErrProjectFinished),
		errors.Is(err, models.ErrAlreadyFinished),
		errors.Is(err, models.ErrOfferClosed),
		errors.Is(err, models.ErrInvalidScore):
		htmxError(w, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		htmxError(w, err.Error())
	default:
		h.Log.Error().Err(err).Msg("request failed")
		http.Error(w, "Server error", http.StatusInternalServerError)
	}
}

func urlID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

func formInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.FormValue(name))
}

// formProjectID reads the optional project selection. Empty or "0" means no
// project.
func formProjectID(r *http.Request) *int {
	raw := r.FormValue("project_id")
	if raw == "" || raw == "0" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &id
}

func (h *Handler) render(w http.ResponseWriter, name string, data map[string]interface{}) {
	if err := h.Templates.ExecuteTemplate(w, name, data); err != nil {
		h.Log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if h.currentAccount(r) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	h.render(w, "index.html", map[string]interface{}{
		"LoggedIn": false,
	})
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	offers, err := h.Offers.Approved(r.Context())
	if err != nil {
		offers = []models.Offer{}
	}
	projects, err := h.Projects.List(r.Context())
	if err != nil {
		projects = []models.Project{}
	}

	var inquiries []models.Inquiry
	if acct.Role == models.RoleWorker {
		inquiries, _ = h.Inquiries.List(r.Context(), *acct)
	}

	h.render(w, "dashboard.html", map[string]interface{}{
		"LoggedIn":  true,
		"Account":   acct,
		"Offers":    offers,
		"Projects":  projects,
		"Inquiries": inquiries,
	})
}

// GuestDashboard shows approved offers, finished projects and the latest
// donor ratings without requiring a login.
func (h *Handler) GuestDashboard(w http.ResponseWriter, r *http.Request) {
	offers, _ := h.Offers.Approved(r.Context())
	projects, _ := h.Projects.Finished(r.Context())
	ratings, _ := h.Ratings.DonorRatings(r.Context(), 10)

	h.render(w, "guest_dashboard.html", map[string]interface{}{
		"LoggedIn": h.currentAccount(r) != nil,
		"Offers":   offers,
		"Projects": projects,
		"Ratings":  ratings,
	})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	var myOffers []models.Offer
	var myApplications []models.Application

	switch acct.Role {
	case models.RoleDonor:
		myOffers, _ = h.Offers.ByDonor(r.Context(), acct.ID)
	case models.RoleBeneficiary:
		myApplications, _ = h.Applications.Own(r.Context(), *acct)
	}

	h.render(w, "profile.html", map[string]interface{}{
		"LoggedIn":       true,
		"Account":        acct,
		"MyOffers":       myOffers,
		"MyApplications": myApplications,
	})
}
