package handlers

import (
	"fmt"
	"net/http"
)

func (h *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	_, err := h.Offers.Create(r.Context(), *acct,
		r.FormValue("title"),
		r.FormValue("description"),
		r.FormValue("type"),
		formProjectID(r),
	)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) OfferDetail(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	offerID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	offer, err := h.Offers.Get(r.Context(), *acct, offerID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	attachments, _ := h.Offers.Attachments(r.Context(), *acct, offerID)

	h.render(w, "offer_detail.html", map[string]interface{}{
		"LoggedIn":    true,
		"Account":     acct,
		"Offer":       offer,
		"Attachments": attachments,
	})
}

func (h *Handler) EditOffer(w http.ResponseWriter, r *http.Request) {
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

	err = h.Offers.Edit(r.Context(), *acct, offerID,
		r.FormValue("title"),
		r.FormValue("description"),
		r.FormValue("type"),
		formProjectID(r),
	)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Offers.Delete(r.Context(), *acct, offerID); err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", "/dashboard")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) AddAttachment(w http.ResponseWriter, r *http.Request) {
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

	if _, err := h.Offers.AddAttachment(r.Context(), *acct, offerID, r.FormValue("filename")); err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("HX-Redirect", fmt.Sprintf("/offers/%d", offerID))
	w.WriteHeader(http.StatusOK)
}

// ManageOffer lists the applications on the donor's own offer.
func (h *Handler) ManageOffer(w http.ResponseWriter, r *http.Request) {
	acct := h.currentAccount(r)
	if acct == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	offerID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	offer, err := h.Offers.Get(r.Context(), *acct, offerID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	applications, err := h.Applications.ForOffer(r.Context(), *acct, offerID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.render(w, "manage_offer.html", map[string]interface{}{
		"LoggedIn":     true,
		"Account":      acct,
		"Offer":        offer,
		"Applications": applications,
	})
}
