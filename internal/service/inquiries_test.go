package service

import (
	"context"
	"errors"
	"testing"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage/memory"
)

func TestSubmitInquiry(t *testing.T) {
	store := memory.New()
	svc := NewInquiries(store, nopLog)

	donor := seedAccount(t, store, models.RoleDonor)

	signed, err := svc.Submit(context.Background(), "Question", "How do I donate a car?", &donor)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if signed.AuthorID == nil || *signed.AuthorID != donor.ID {
		t.Fatalf("author not recorded")
	}

	anon, err := svc.Submit(context.Background(), "Hello", "Just saying thanks", nil)
	if err != nil {
		t.Fatalf("anonymous submit: %v", err)
	}
	if anon.AuthorID != nil {
		t.Fatalf("anonymous inquiry must carry no author")
	}
}

func TestListInquiries(t *testing.T) {
	store := memory.New()
	svc := NewInquiries(store, nopLog)

	worker := seedAccount(t, store, models.RoleWorker)
	donor := seedAccount(t, store, models.RoleDonor)

	if _, err := svc.Submit(context.Background(), "First", "msg", nil); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Submit(context.Background(), "Second", "msg", &donor); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := svc.List(context.Background(), donor); !errors.Is(err, models.ErrPermissionDenied) {
		t.Fatalf("donor listing: expected ErrPermissionDenied, got %v", err)
	}

	got, err := svc.List(context.Background(), worker)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 inquiries, got %d", len(got))
	}
	if got[0].Title != "Second" {
		t.Fatalf("expected newest first, got %q", got[0].Title)
	}
}
