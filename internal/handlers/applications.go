package handlers

import (
	"net/http"
)

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
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

	if _, err := h.Applications.Apply(r.Context(), *acct, offerID, r.FormValue("message")); err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) AcceptApplication(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	applicationID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if err := h.Applications.Accept(r.Context(), *acct, applicationID); err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusOK)
}
