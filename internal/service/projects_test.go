package service

import (
	"context"
	"errors"
	"testing"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage/memory"
)

func TestCreateProject(t *testing.T) {
	store := memory.New()
	svc := NewProjects(store, nopLog)

	worker := seedAccount(t, store, models.RoleWorker)
	donor := seedAccount(t, store, models.RoleDonor)

	if _, err := svc.Create(context.Background(), donor, "Food bank", "Weekly food parcels"); !errors.Is(err, models.ErrPermissionDenied) {
		t.Fatalf("donor caller: expected ErrPermissionDenied, got %v", err)
	}

	p, err := svc.Create(context.Background(), worker, "Food bank", "Weekly food parcels")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Status != models.ProjectActive {
		t.Fatalf("expected active status, got %s", p.Status)
	}
	if p.WorkerID != worker.ID {
		t.Fatalf("project not attributed to the creating worker")
	}
}

func TestEditProjectAnyWorker(t *testing.T) {
	store := memory.New()
	svc := NewProjects(store, nopLog)

	creator := seedAccount(t, store, models.RoleWorker)
	other := seedAccount(t, store, models.RoleWorker)

	p, err := svc.Create(context.Background(), creator, "Food bank", "Weekly food parcels")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Projects are a shared staff resource; any worker may edit.
	if err := svc.Edit(context.Background(), other, p.ID, "Food bank 2.0", "Daily food parcels"); err != nil {
		t.Fatalf("edit by another worker: %v", err)
	}

	got, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Food bank 2.0" {
		t.Fatalf("edit not persisted, title %q", got.Title)
	}
}

func TestFinishProjectClosesLinkedOffers(t *testing.T) {
	store := memory.New()
	svc := NewProjects(store, nopLog)

	worker := seedAccount(t, store, models.RoleWorker)
	donor := seedAccount(t, store, models.RoleDonor)

	p, err := svc.Create(context.Background(), worker, "Shelter renovation", "New roof")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	linked := seedOffer(t, store, donor, models.OfferApproved, &p.ID)
	standalone := seedOffer(t, store, donor, models.OfferApproved, nil)

	if err := svc.Finish(context.Background(), worker, p.ID); err != nil {
		t.Fatalf("finish: %v", err)
	}

	got, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.ProjectFinished {
		t.Fatalf("expected finished, got %s", got.Status)
	}
	if got.FinishedAt == nil {
		t.Fatalf("finished_at not set")
	}

	o, err := store.GetOffer(context.Background(), linked.ID)
	if err != nil {
		t.Fatalf("get linked offer: %v", err)
	}
	if o.Status != models.OfferClosed {
		t.Fatalf("linked offer not closed, status %s", o.Status)
	}

	o, err = store.GetOffer(context.Background(), standalone.ID)
	if err != nil {
		t.Fatalf("get standalone offer: %v", err)
	}
	if o.Status != models.OfferApproved {
		t.Fatalf("standalone offer must be untouched, status %s", o.Status)
	}
}

func TestFinishProjectTwice(t *testing.T) {
	store := memory.New()
	svc := NewProjects(store, nopLog)

	worker := seedAccount(t, store, models.RoleWorker)

	p, err := svc.Create(context.Background(), worker, "Shelter renovation", "New roof")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Finish(context.Background(), worker, p.ID); err != nil {
		t.Fatalf("first finish: %v", err)
	}

	first, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if err := svc.Finish(context.Background(), worker, p.ID); !errors.Is(err, models.ErrAlreadyFinished) {
		t.Fatalf("second finish: expected ErrAlreadyFinished, got %v", err)
	}

	second, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if second.FinishedAt == nil || !second.FinishedAt.Equal(*first.FinishedAt) {
		t.Fatalf("finished_at changed on repeated finish")
	}
}

func TestFinishProjectRoleGate(t *testing.T) {
	store := memory.New()
	svc := NewProjects(store, nopLog)

	worker := seedAccount(t, store, models.RoleWorker)
	beneficiary := seedAccount(t, store, models.RoleBeneficiary)

	p, err := svc.Create(context.Background(), worker, "Shelter renovation", "New roof")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Finish(context.Background(), beneficiary, p.ID); !errors.Is(err, models.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestFinishedProjectsListing(t *testing.T) {
	store := memory.New()
	svc := NewProjects(store, nopLog)

	worker := seedAccount(t, store, models.RoleWorker)

	active, err := svc.Create(context.Background(), worker, "Active one", "Still running")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	done, err := svc.Create(context.Background(), worker, "Done one", "Wrapped up")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Finish(context.Background(), worker, done.ID); err != nil {
		t.Fatalf("finish: %v", err)
	}

	finished, err := svc.Finished(context.Background())
	if err != nil {
		t.Fatalf("finished: %v", err)
	}
	if len(finished) != 1 || finished[0].ID != done.ID {
		t.Fatalf("expected exactly project %d in finished list, got %+v", done.ID, finished)
	}
	_ = active
}
