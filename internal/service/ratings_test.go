package service

import (
	"context"
	"errors"
	"testing"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage/memory"
)

func seedApplication(t *testing.T, store *memory.Store, applicant models.Account, offerID int) models.Application {
	t.Helper()

	a, err := store.CreateApplication(context.Background(), models.Application{
		Message:     "help needed",
		Status:      models.ApplicationAccepted,
		ApplicantID: applicant.ID,
		OfferID:     offerID,
	})
	if err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return a
}

func TestRateDerivesType(t *testing.T) {
	store := memory.New()
	svc := NewRatings(store, store, nopLog)

	donor := seedAccount(t, store, models.RoleDonor)
	worker := seedAccount(t, store, models.RoleWorker)
	applicant := seedAccount(t, store, models.RoleBeneficiary)

	o := seedOffer(t, store, donor, models.OfferClosed, nil)
	a := seedApplication(t, store, applicant, o.ID)

	r, err := svc.Rate(context.Background(), worker, a.ID, 5, "generous donor")
	if err != nil {
		t.Fatalf("worker rate: %v", err)
	}
	if r.RatingType != models.RatingDonor {
		t.Fatalf("worker rating type %s, want donor_rating", r.RatingType)
	}

	r, err = svc.Rate(context.Background(), applicant, a.ID, 4, "got real help")
	if err != nil {
		t.Fatalf("applicant rate: %v", err)
	}
	if r.RatingType != models.RatingHelpSurvey {
		t.Fatalf("applicant rating type %s, want help_survey", r.RatingType)
	}
}

func TestRatePermissions(t *testing.T) {
	store := memory.New()
	svc := NewRatings(store, store, nopLog)

	donor := seedAccount(t, store, models.RoleDonor)
	applicant := seedAccount(t, store, models.RoleBeneficiary)
	bystander := seedAccount(t, store, models.RoleBeneficiary)
	admin := seedAccount(t, store, models.RoleAdministrator)

	o := seedOffer(t, store, donor, models.OfferClosed, nil)
	a := seedApplication(t, store, applicant, o.ID)

	// Donors, unrelated beneficiaries and administrators may not rate.
	for _, caller := range []models.Account{donor, bystander, admin} {
		if _, err := svc.Rate(context.Background(), caller, a.ID, 3, "no"); !errors.Is(err, models.ErrPermissionDenied) {
			t.Fatalf("caller %s: expected ErrPermissionDenied, got %v", caller.Role, err)
		}
	}
}

func TestRateScoreBounds(t *testing.T) {
	store := memory.New()
	svc := NewRatings(store, store, nopLog)

	donor := seedAccount(t, store, models.RoleDonor)
	worker := seedAccount(t, store, models.RoleWorker)
	applicant := seedAccount(t, store, models.RoleBeneficiary)

	o := seedOffer(t, store, donor, models.OfferClosed, nil)
	a := seedApplication(t, store, applicant, o.ID)

	for _, score := range []int{0, 6, -1} {
		if _, err := svc.Rate(context.Background(), worker, a.ID, score, ""); !errors.Is(err, models.ErrInvalidScore) {
			t.Fatalf("score %d: expected ErrInvalidScore, got %v", score, err)
		}
	}
	for score := 1; score <= 5; score++ {
		if _, err := svc.Rate(context.Background(), worker, a.ID, score, ""); err != nil {
			t.Fatalf("score %d: %v", score, err)
		}
	}
}

func TestDonorRatingsLimit(t *testing.T) {
	store := memory.New()
	svc := NewRatings(store, store, nopLog)

	donor := seedAccount(t, store, models.RoleDonor)
	worker := seedAccount(t, store, models.RoleWorker)
	applicant := seedAccount(t, store, models.RoleBeneficiary)

	o := seedOffer(t, store, donor, models.OfferClosed, nil)
	a := seedApplication(t, store, applicant, o.ID)

	for i := 0; i < 3; i++ {
		if _, err := svc.Rate(context.Background(), worker, a.ID, 5, "great"); err != nil {
			t.Fatalf("rate: %v", err)
		}
	}
	// Help surveys never show up in the donor-rating listing.
	if _, err := svc.Rate(context.Background(), applicant, a.ID, 2, "so so"); err != nil {
		t.Fatalf("survey rate: %v", err)
	}

	got, err := svc.DonorRatings(context.Background(), 2)
	if err != nil {
		t.Fatalf("donor ratings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("limit 2: got %d ratings", len(got))
	}

	all, err := svc.DonorRatings(context.Background(), 0)
	if err != nil {
		t.Fatalf("donor ratings: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("limit 0 means no limit: got %d ratings, want 3", len(all))
	}
	for _, r := range all {
		if r.RatingType != models.RatingDonor {
			t.Fatalf("listing leaked a %s rating", r.RatingType)
		}
	}
}
