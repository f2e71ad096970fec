package service

import (
	"context"
	"errors"
	"testing"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage/memory"
)

func newOfferService(store *memory.Store) *OfferService {
	return NewOffers(store, store, store, "https://files.example.com", nopLog)
}

func TestCreateOffer(t *testing.T) {
	store := memory.New()
	svc := newOfferService(store)

	donor := seedAccount(t, store, models.RoleDonor)
	beneficiary := seedAccount(t, store, models.RoleBeneficiary)

	if _, err := svc.Create(context.Background(), beneficiary, "Blankets", "Wool blankets", "goods", nil); !errors.Is(err, models.ErrPermissionDenied) {
		t.Fatalf("beneficiary caller: expected ErrPermissionDenied, got %v", err)
	}

	o, err := svc.Create(context.Background(), donor, "Blankets", "Wool blankets", "goods", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.Status != models.OfferPending {
		t.Fatalf("new offers start pending, got %s", o.Status)
	}
	if o.DonorID != donor.ID {
		t.Fatalf("offer not attributed to the donor")
	}
}

func TestCreateOfferOnFinishedProject(t *testing.T) {
	store := memory.New()
	svc := newOfferService(store)

	worker := seedAccount(t, store, models.RoleWorker)
	donor := seedAccount(t, store, models.RoleDonor)

	projects := NewProjects(store, nopLog)
	p, err := projects.Create(context.Background(), worker, "Closed drive", "Already wrapped up")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if err := projects.Finish(context.Background(), worker, p.ID); err != nil {
		t.Fatalf("finish project: %v", err)
	}

	if _, err := svc.Create(context.Background(), donor, "Blankets", "Wool blankets", "goods", &p.ID); !errors.Is(err, models.ErrProjectFinished) {
		t.Fatalf("expected ErrProjectFinished, got %v", err)
	}
}

func TestEditOffer(t *testing.T) {
	store := memory.New()
	svc := newOfferService(store)

	owner := seedAccount(t, store, models.RoleDonor)
	other := seedAccount(t, store, models.RoleDonor)
	admin := seedAccount(t, store, models.RoleAdministrator)

	o := seedOffer(t, store, owner, models.OfferPending, nil)

	if err := svc.Edit(context.Background(), other, o.ID, "New title", "New desc", "goods", nil); !errors.Is(err, models.ErrPermissionDenied) {
		t.Fatalf("non-owner edit: expected ErrPermissionDenied, got %v", err)
	}

	if err := svc.Edit(context.Background(), owner, o.ID, "New title", "New desc", "goods", nil); err != nil {
		t.Fatalf("owner edit: %v", err)
	}
	if err := svc.Edit(context.Background(), admin, o.ID, "Admin title", "Admin desc", "goods", nil); err != nil {
		t.Fatalf("admin edit: %v", err)
	}

	got, err := store.GetOffer(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Admin title" {
		t.Fatalf("edit not persisted, title %q", got.Title)
	}
}

func TestEditOfferOntoFinishedProject(t *testing.T) {
	store := memory.New()
	svc := newOfferService(store)

	worker := seedAccount(t, store, models.RoleWorker)
	donor := seedAccount(t, store, models.RoleDonor)

	projects := NewProjects(store, nopLog)
	p, err := projects.Create(context.Background(), worker, "Closed drive", "Already wrapped up")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if err := projects.Finish(context.Background(), worker, p.ID); err != nil {
		t.Fatalf("finish project: %v", err)
	}

	o := seedOffer(t, store, donor, models.OfferPending, nil)
	if err := svc.Edit(context.Background(), donor, o.ID, "Blankets", "Wool blankets", "goods", &p.ID); !errors.Is(err, models.ErrProjectFinished) {
		t.Fatalf("expected ErrProjectFinished, got %v", err)
	}
}

func TestApproveOffer(t *testing.T) {
	store := memory.New()
	svc := newOfferService(store)

	worker := seedAccount(t, store, models.RoleWorker)
	donor := seedAccount(t, store, models.RoleDonor)

	o := seedOffer(t, store, donor, models.OfferPending, nil)

	if err := svc.Approve(context.Background(), donor, o.ID); !errors.Is(err, models.ErrPermissionDenied) {
		t.Fatalf("donor approval: expected ErrPermissionDenied, got %v", err)
	}

	if err := svc.Approve(context.Background(), worker, o.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	got, err := store.GetOffer(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.OfferApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}

	// Approval is a pending-only transition.
	if err := svc.Approve(context.Background(), worker, o.ID); err == nil {
		t.Fatalf("approving a non-pending offer must fail")
	}
}

func TestRejectOfferDeletes(t *testing.T) {
	store := memory.New()
	svc := newOfferService(store)

	worker := seedAccount(t, store, models.RoleWorker)
	donor := seedAccount(t, store, models.RoleDonor)
	beneficiary := seedAccount(t, store, models.RoleBeneficiary)

	o := seedOffer(t, store, donor, models.OfferPending, nil)
	if _, err := store.CreateApplication(context.Background(), models.Application{
		Message:     "I could use these",
		Status:      models.ApplicationPending,
		ApplicantID: beneficiary.ID,
		OfferID:     o.ID,
	}); err != nil {
		t.Fatalf("seed application: %v", err)
	}
	if _, err := store.CreateAttachment(context.Background(), models.Attachment{
		Filename: "photo.jpg",
		URL:      "https://files.example.com/photo.jpg",
		OfferID:  o.ID,
	}); err != nil {
		t.Fatalf("seed attachment: %v", err)
	}

	if err := svc.Reject(context.Background(), worker, o.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}

	if _, err := store.GetOffer(context.Background(), o.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("rejected offer must be gone, got %v", err)
	}
	apps, err := store.ListApplicationsByOffer(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("list applications: %v", err)
	}
	if len(apps) != 0 {
		t.Fatalf("applications survived rejection: %d left", len(apps))
	}
	atts, err := store.ListAttachmentsByOffer(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("list attachments: %v", err)
	}
	if len(atts) != 0 {
		t.Fatalf("attachments survived rejection: %d left", len(atts))
	}
}

func TestDeleteOfferOwnership(t *testing.T) {
	store := memory.New()
	svc := newOfferService(store)

	owner := seedAccount(t, store, models.RoleDonor)
	other := seedAccount(t, store, models.RoleDonor)

	o := seedOffer(t, store, owner, models.OfferApproved, nil)

	if err := svc.Delete(context.Background(), other, o.ID); !errors.Is(err, models.ErrPermissionDenied) {
		t.Fatalf("non-owner delete: expected ErrPermissionDenied, got %v", err)
	}

	if err := svc.Delete(context.Background(), owner, o.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := store.GetOffer(context.Background(), o.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("deleted offer must be gone, got %v", err)
	}
}

func TestOfferVisibility(t *testing.T) {
	store := memory.New()
	svc := newOfferService(store)

	owner := seedAccount(t, store, models.RoleDonor)
	otherDonor := seedAccount(t, store, models.RoleDonor)
	worker := seedAccount(t, store, models.RoleWorker)
	admin := seedAccount(t, store, models.RoleAdministrator)
	beneficiary := seedAccount(t, store, models.RoleBeneficiary)

	pending := seedOffer(t, store, owner, models.OfferPending, nil)
	approved := seedOffer(t, store, owner, models.OfferApproved, nil)

	cases := []struct {
		name    string
		caller  models.Account
		offerID int
		wantErr error
	}{
		{"owner sees pending", owner, pending.ID, nil},
		{"worker sees pending", worker, pending.ID, nil},
		{"admin sees pending", admin, pending.ID, nil},
		{"other donor blocked", otherDonor, pending.ID, models.ErrForbidden},
		{"beneficiary blocked", beneficiary, pending.ID, models.ErrForbidden},
		{"beneficiary sees approved", beneficiary, approved.ID, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Get(context.Background(), tc.caller, tc.offerID)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestPendingListingRoleGate(t *testing.T) {
	store := memory.New()
	svc := newOfferService(store)

	donor := seedAccount(t, store, models.RoleDonor)
	worker := seedAccount(t, store, models.RoleWorker)

	seedOffer(t, store, donor, models.OfferPending, nil)
	seedOffer(t, store, donor, models.OfferApproved, nil)

	if _, err := svc.Pending(context.Background(), donor); !errors.Is(err, models.ErrPermissionDenied) {
		t.Fatalf("donor listing: expected ErrPermissionDenied, got %v", err)
	}

	pending, err := svc.Pending(context.Background(), worker)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending offer, got %d", len(pending))
	}
}

func TestAddAttachment(t *testing.T) {
	store := memory.New()
	svc := newOfferService(store)

	owner := seedAccount(t, store, models.RoleDonor)
	other := seedAccount(t, store, models.RoleDonor)

	o := seedOffer(t, store, owner, models.OfferPending, nil)

	if _, err := svc.AddAttachment(context.Background(), other, o.ID, "proof.pdf"); !errors.Is(err, models.ErrPermissionDenied) {
		t.Fatalf("non-owner attach: expected ErrPermissionDenied, got %v", err)
	}

	if _, err := svc.AddAttachment(context.Background(), owner, o.ID, "malware.exe"); err == nil {
		t.Fatalf("disallowed extension must be rejected")
	}

	att, err := svc.AddAttachment(context.Background(), owner, o.ID, "proof.pdf")
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if att.URL == "" {
		t.Fatalf("attachment URL not derived")
	}
	if att.Filename != "proof.pdf" {
		t.Fatalf("original filename must be kept, got %q", att.Filename)
	}
}
