package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wojtuswowo/charity-connect-rbac/internal/authz"
	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage"
	"github.com/wojtuswowo/charity-connect-rbac/internal/uploads"
)

// OfferService manages help offers, their moderation and attachments.
type OfferService struct {
	offers      storage.OfferStore
	attachments storage.AttachmentStore
	projects    storage.ProjectStore
	baseURL     string
	log         zerolog.Logger
}

func NewOffers(offers storage.OfferStore, attachments storage.AttachmentStore, projects storage.ProjectStore, uploadBaseURL string, log zerolog.Logger) *OfferService {
	return &OfferService{
		offers:      offers,
		attachments: attachments,
		projects:    projects,
		baseURL:     uploadBaseURL,
		log:         log,
	}
}

// checkProjectLink rejects linking an offer to a finished project.
func (s *OfferService) checkProjectLink(ctx context.Context, projectID *int) error {
	if projectID == nil {
		return nil
	}
	p, err := s.projects.GetProject(ctx, *projectID)
	if err != nil {
		return err
	}
	if p.Status == models.ProjectFinished {
		return models.ErrProjectFinished
	}
	return nil
}

// Create submits a new offer in status pending, awaiting worker approval.
// Donors and administrators only.
func (s *OfferService) Create(ctx context.Context, caller models.Account, title, description, offerType string, projectID *int) (models.Offer, error) {
	if !authz.Can(caller, authz.ActionCreateOffer, nil) {
		return models.Offer{}, models.ErrPermissionDenied
	}
	if err := s.checkProjectLink(ctx, projectID); err != nil {
		return models.Offer{}, err
	}

	o, err := s.offers.CreateOffer(ctx, models.Offer{
		Title:       title,
		Description: description,
		OfferType:   offerType,
		Status:      models.OfferPending,
		DonorID:     caller.ID,
		ProjectID:   projectID,
	})
	if err != nil {
		return models.Offer{}, err
	}

	s.log.Info().Int("offer_id", o.ID).Int("donor_id", caller.ID).Msg("offer created")
	return o, nil
}

// Edit updates an offer. Only the owning donor or an administrator may edit,
// and the offer may not be moved onto a finished project.
func (s *OfferService) Edit(ctx context.Context, caller models.Account, id int, title, description, offerType string, projectID *int) error {
	o, err := s.offers.GetOffer(ctx, id)
	if err != nil {
		return err
	}
	if !authz.Can(caller, authz.ActionEditOffer, o) {
		return models.ErrPermissionDenied
	}
	if err := s.checkProjectLink(ctx, projectID); err != nil {
		return err
	}

	return s.offers.UpdateOffer(ctx, id, title, description, offerType, projectID)
}

// Approve moves a pending offer to approved, making it publicly visible.
// Worker only.
func (s *OfferService) Approve(ctx context.Context, caller models.Account, id int) error {
	if !authz.Can(caller, authz.ActionApproveOffer, nil) {
		return models.ErrPermissionDenied
	}

	o, err := s.offers.GetOffer(ctx, id)
	if err != nil {
		return err
	}
	if o.Status != models.OfferPending {
		return fmt.Errorf("offer %d is not pending", id)
	}

	if err := s.offers.SetOfferStatus(ctx, id, models.OfferApproved); err != nil {
		return err
	}

	s.log.Info().Int("offer_id", id).Int("worker_id", caller.ID).Msg("offer approved")
	return nil
}

// Reject removes a pending offer entirely, with its applications and
// attachments. Worker only. Rejected offers leave no trace.
func (s *OfferService) Reject(ctx context.Context, caller models.Account, id int) error {
	if !authz.Can(caller, authz.ActionRejectOffer, nil) {
		return models.ErrPermissionDenied
	}

	if err := s.offers.DeleteOfferCascade(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int("offer_id", id).Int("worker_id", caller.ID).Msg("offer rejected and removed")
	return nil
}

// Delete removes an offer with its applications and attachments. Owning
// donor or administrator only.
func (s *OfferService) Delete(ctx context.Context, caller models.Account, id int) error {
	o, err := s.offers.GetOffer(ctx, id)
	if err != nil {
		return err
	}
	if !authz.Can(caller, authz.ActionDeleteOffer, o) {
		return models.ErrPermissionDenied
	}

	if err := s.offers.DeleteOfferCascade(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int("offer_id", id).Int("caller_id", caller.ID).Msg("offer deleted with applications and attachments")
	return nil
}

// Get returns an offer, enforcing the visibility rule: non-approved offers
// are visible only to staff and the owning donor.
func (s *OfferService) Get(ctx context.Context, caller models.Account, id int) (models.Offer, error) {
	o, err := s.offers.GetOffer(ctx, id)
	if err != nil {
		return models.Offer{}, err
	}
	if !authz.Can(caller, authz.ActionViewOffer, o) {
		return models.Offer{}, models.ErrForbidden
	}
	return o, nil
}

// Approved lists publicly visible offers, newest first.
func (s *OfferService) Approved(ctx context.Context) ([]models.Offer, error) {
	return s.offers.ListOffersByStatus(ctx, models.OfferApproved)
}

// Pending lists offers awaiting moderation. Workers and administrators only.
func (s *OfferService) Pending(ctx context.Context, caller models.Account) ([]models.Offer, error) {
	if !authz.Can(caller, authz.ActionListPending, nil) {
		return nil, models.ErrPermissionDenied
	}
	return s.offers.ListOffersByStatus(ctx, models.OfferPending)
}

// ByDonor lists a donor's own offers for the profile page.
func (s *OfferService) ByDonor(ctx context.Context, donorID int) ([]models.Offer, error) {
	return s.offers.ListOffersByDonor(ctx, donorID)
}

// AddAttachment records attachment metadata on an offer. The stored URL is
// derived from a generated object name; file bodies live elsewhere.
func (s *OfferService) AddAttachment(ctx context.Context, caller models.Account, offerID int, filename string) (models.Attachment, error) {
	o, err := s.offers.GetOffer(ctx, offerID)
	if err != nil {
		return models.Attachment{}, err
	}
	if !authz.Can(caller, authz.ActionEditOffer, o) {
		return models.Attachment{}, models.ErrPermissionDenied
	}
	if err := uploads.ValidateFilename(filename); err != nil {
		return models.Attachment{}, err
	}

	return s.attachments.CreateAttachment(ctx, models.Attachment{
		Filename: filename,
		URL:      uploads.ObjectURL(s.baseURL, filename),
		OfferID:  offerID,
	})
}

// Attachments lists attachment metadata for an offer, subject to the same
// visibility rule as the offer itself.
func (s *OfferService) Attachments(ctx context.Context, caller models.Account, offerID int) ([]models.Attachment, error) {
	o, err := s.offers.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(caller, authz.ActionViewOffer, o) {
		return nil, models.ErrForbidden
	}
	return s.attachments.ListAttachmentsByOffer(ctx, offerID)
}
