package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage/memory"
)

var nopLog = zerolog.Nop()

// seedAccount inserts an account directly into the store, bypassing
// registration rules, so tests can create any role.
func seedAccount(t *testing.T, store *memory.Store, role models.Role) models.Account {
	t.Helper()

	acct, err := store.CreateAccount(context.Background(), models.Account{
		Email:        fmt.Sprintf("%s-%d@example.com", role, nextSeed()),
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     string(role),
		Role:         role,
		IsApproved:   true,
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return acct
}

var seedCounter int

func nextSeed() int {
	seedCounter++
	return seedCounter
}

// seedOffer creates an offer owned by donor in the given status.
func seedOffer(t *testing.T, store *memory.Store, donor models.Account, status models.OfferStatus, projectID *int) models.Offer {
	t.Helper()

	o, err := store.CreateOffer(context.Background(), models.Offer{
		Title:       "Winter clothes",
		Description: "Warm jackets and boots",
		OfferType:   "goods",
		Status:      status,
		DonorID:     donor.ID,
		ProjectID:   projectID,
	})
	if err != nil {
		t.Fatalf("seed offer: %v", err)
	}
	return o
}
