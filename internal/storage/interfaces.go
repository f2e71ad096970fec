// Package storage defines the persistence interfaces the services depend on.
// internal/db implements them on PostgreSQL; the memory subpackage implements
// them in process for tests.
package storage

import (
	"context"
	"time"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
)

// AccountStore persists accounts. Email uniqueness is enforced by the store.
type AccountStore interface {
	// CreateAccount returns models.ErrDuplicateEmail when the email is taken.
	CreateAccount(ctx context.Context, acct models.Account) (models.Account, error)
	GetAccount(ctx context.Context, id int) (models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (models.Account, error)
	ListPendingAccounts(ctx context.Context) ([]models.Account, error)
	ApproveAccount(ctx context.Context, id int) error
}

// ProjectStore persists projects and owns the finish cascade.
type ProjectStore interface {
	CreateProject(ctx context.Context, p models.Project) (models.Project, error)
	GetProject(ctx context.Context, id int) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListProjectsByStatus(ctx context.Context, status models.ProjectStatus) ([]models.Project, error)
	UpdateProject(ctx context.Context, id int, title, description string) error
	// FinishProject marks the project finished and closes every offer linked
	// to it, in one transaction. Returns models.ErrAlreadyFinished when the
	// project is not active; the check happens inside the transaction.
	FinishProject(ctx context.Context, id int, finishedAt time.Time) error
}

// OfferStore persists offers and owns the delete cascade.
type OfferStore interface {
	CreateOffer(ctx context.Context, o models.Offer) (models.Offer, error)
	GetOffer(ctx context.Context, id int) (models.Offer, error)
	UpdateOffer(ctx context.Context, id int, title, description, offerType string, projectID *int) error
	SetOfferStatus(ctx context.Context, id int, status models.OfferStatus) error
	ListOffersByStatus(ctx context.Context, status models.OfferStatus) ([]models.Offer, error)
	ListOffersByDonor(ctx context.Context, donorID int) ([]models.Offer, error)
	// DeleteOfferCascade removes the offer together with its applications
	// and attachments; either everything goes or nothing does.
	DeleteOfferCascade(ctx context.Context, id int) error
}

// AttachmentStore persists attachment metadata (never file bodies).
type AttachmentStore interface {
	CreateAttachment(ctx context.Context, a models.Attachment) (models.Attachment, error)
	ListAttachmentsByOffer(ctx context.Context, offerID int) ([]models.Attachment, error)
}

// ApplicationStore persists applications and owns the accept cascade.
type ApplicationStore interface {
	// CreateApplication returns models.ErrDuplicateApplication when the
	// (offer, applicant) pair already applied.
	CreateApplication(ctx context.Context, a models.Application) (models.Application, error)
	GetApplication(ctx context.Context, id int) (models.Application, error)
	ListApplicationsByOffer(ctx context.Context, offerID int) ([]models.Application, error)
	ListApplicationsByApplicant(ctx context.Context, applicantID int) ([]models.Application, error)
	// AcceptApplication atomically accepts the application, closes the
	// owning offer and rejects every other pending application on it. The
	// pending state is re-checked inside the transaction.
	AcceptApplication(ctx context.Context, id int) error
}

// RatingStore persists ratings. They are append-only.
type RatingStore interface {
	CreateRating(ctx context.Context, r models.Rating) (models.Rating, error)
	ListRatingsByType(ctx context.Context, t models.RatingType, limit int) ([]models.Rating, error)
}

// InquiryStore persists contact messages.
type InquiryStore interface {
	CreateInquiry(ctx context.Context, i models.Inquiry) (models.Inquiry, error)
	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
}

// Store aggregates every persistence interface.
type Store interface {
	AccountStore
	ProjectStore
	OfferStore
	AttachmentStore
	ApplicationStore
	RatingStore
	InquiryStore
}
