package handlers

import (
	"net/http"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
)

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", nil)
}

func (h *Handler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirmPassword := r.FormValue("confirm_password")
	firstName := r.FormValue("first_name")
	lastName := r.FormValue("last_name")
	role := models.Role(r.FormValue("role"))

	if password != confirmPassword {
		htmxError(w, "Passwords do not match")
		return
	}

	acct, err := h.Accounts.Register(r.Context(), email, password, firstName, lastName, role)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.logIn(w, r, acct)
	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", nil)
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	acct, err := h.Accounts.Authenticate(r.Context(), email, password)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.logIn(w, r, acct)
	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, "session")
	session.Options.MaxAge = -1
	session.Save(r, w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) logIn(w http.ResponseWriter, r *http.Request, acct models.Account) {
	session, _ := h.Store.Get(r, "session")
	session.Values["user_id"] = acct.ID
	session.Values["role"] = string(acct.Role)
	session.Save(r, w)
}
