package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wojtuswowo/charity-connect-rbac/internal/authz"
	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage"
)

// InquiryService records contact messages from visitors and users.
type InquiryService struct {
	store storage.InquiryStore
	log   zerolog.Logger
}

func NewInquiries(store storage.InquiryStore, log zerolog.Logger) *InquiryService {
	return &InquiryService{store: store, log: log}
}

// Submit records an inquiry. Anonymous submissions carry no author
// reference.
func (s *InquiryService) Submit(ctx context.Context, title, message string, author *models.Account) (models.Inquiry, error) {
	var authorID *int
	if author != nil {
		id := author.ID
		authorID = &id
	}

	i, err := s.store.CreateInquiry(ctx, models.Inquiry{
		Title:    title,
		Message:  message,
		AuthorID: authorID,
	})
	if err != nil {
		return models.Inquiry{}, err
	}

	s.log.Info().Int("inquiry_id", i.ID).Bool("anonymous", authorID == nil).Msg("inquiry submitted")
	return i, nil
}

// List returns all inquiries, newest first. Workers only.
func (s *InquiryService) List(ctx context.Context, caller models.Account) ([]models.Inquiry, error) {
	if !authz.Can(caller, authz.ActionListInquiries, nil) {
		return nil, models.ErrPermissionDenied
	}
	return s.store.ListInquiries(ctx)
}
