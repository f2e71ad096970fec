package handlers

import (
	"net/http"
)

func (h *Handler) Rate(w http.ResponseWriter, r *http.Request) {
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

	score, err := formInt(r, "score")
	if err != nil {
		htmxError(w, "Score must be a number between 1 and 5")
		return
	}

	if _, err := h.Ratings.Rate(r.Context(), *acct, applicationID, score, r.FormValue("comment")); err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusOK)
}

// SubmitInquiry accepts contact messages from anyone; logged-in submitters
// are recorded as the author, anonymous ones are not attributed.
func (h *Handler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	title := r.FormValue("title")
	message := r.FormValue("message")

	if _, err := h.Inquiries.Submit(r.Context(), title, message, h.currentAccount(r)); err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/guest")
	w.WriteHeader(http.StatusOK)
}
