package handlers

import (
	"net/http"
)

// PendingUsers lists unapproved accounts for the worker panel.
func (h *Handler) PendingUsers(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	users, err := h.Accounts.PendingAccounts(r.Context(), *acct)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.render(w, "worker_users.html", map[string]interface{}{
		"LoggedIn": true,
		"Account":  acct,
		"Users":    users,
	})
}

func (h *Handler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if err := h.Accounts.Approve(r.Context(), *acct, userID); err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/worker/pending-users")
	w.WriteHeader(http.StatusOK)
}

// PendingOffers lists offers awaiting moderation.
func (h *Handler) PendingOffers(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	offers, err := h.Offers.Pending(r.Context(), *acct)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.render(w, "worker_offers.html", map[string]interface{}{
		"LoggedIn": true,
		"Account":  acct,
		"Offers":   offers,
	})
}

func (h *Handler) ApproveOffer(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	offerID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if err := h.Offers.Approve(r.Context(), *acct, offerID); err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/worker/pending-offers")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) RejectOffer(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	offerID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if err := h.Offers.Reject(r.Context(), *acct, offerID); err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/worker/pending-offers")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	_, err := h.Projects.Create(r.Context(), *acct, r.FormValue("title"), r.FormValue("description"))
	if err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) EditProject(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	projectID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if err := h.Projects.Edit(r.Context(), *acct, projectID, r.FormValue("title"), r.FormValue("description")); err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) FinishProject(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	projectID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if err := h.Projects.Finish(r.Context(), *acct, projectID); err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusOK)
}
