package handlers

import (
	"net/http"
)

func (h *Handler) CreateWorkerPage(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.render(w, "create_worker.html", map[string]interface{}{
		"LoggedIn": true,
		"Account":  acct,
	})
}

func (h *Handler) CreateWorkerSubmit(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	_, err := h.Accounts.CreateWorker(r.Context(), *acct,
		r.FormValue("email"),
		r.FormValue("password"),
		r.FormValue("first_name"),
		r.FormValue("last_name"),
	)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusOK)
}
