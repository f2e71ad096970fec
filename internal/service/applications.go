package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wojtuswowo/charity-connect-rbac/internal/authz"
	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage"
)

// ApplicationService manages help applications and the accept cascade.
type ApplicationService struct {
	apps   storage.ApplicationStore
	offers storage.OfferStore
	log    zerolog.Logger
}

func NewApplications(apps storage.ApplicationStore, offers storage.OfferStore, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, offers: offers, log: log}
}

// Apply creates a pending application on an offer. Beneficiaries only, one
// application per offer per applicant, and closed offers take no new
// applications.
func (s *ApplicationService) Apply(ctx context.Context, caller models.Account, offerID int, message string) (models.Application, error) {
	if !authz.Can(caller, authz.ActionApply, nil) {
		return models.Application{}, models.ErrPermissionDenied
	}

	o, err := s.offers.GetOffer(ctx, offerID)
	if err != nil {
		return models.Application{}, err
	}
	if o.Status == models.OfferClosed {
		return models.Application{}, models.ErrOfferClosed
	}

	a, err := s.apps.CreateApplication(ctx, models.Application{
		Message:     message,
		Status:      models.ApplicationPending,
		ApplicantID: caller.ID,
		OfferID:     offerID,
	})
	if err != nil {
		return models.Application{}, err
	}

	s.log.Info().Int("application_id", a.ID).Int("offer_id", offerID).Int("applicant_id", caller.ID).Msg("application submitted")
	return a, nil
}

// Accept accepts one application: the offer closes and every other pending
// application on it is rejected, atomically. Only the donor owning the
// offer may accept.
func (s *ApplicationService) Accept(ctx context.Context, caller models.Account, applicationID int) error {
	a, err := s.apps.GetApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	o, err := s.offers.GetOffer(ctx, a.OfferID)
	if err != nil {
		return err
	}
	if !authz.Can(caller, authz.ActionAcceptApplication, o) {
		return models.ErrPermissionDenied
	}

	if err := s.apps.AcceptApplication(ctx, applicationID); err != nil {
		return err
	}

	s.log.Info().Int("application_id", applicationID).Int("offer_id", o.ID).Msg("application accepted, offer closed, siblings rejected")
	return nil
}

// ForOffer lists the applications on an offer. Only the owning donor may
// see them.
func (s *ApplicationService) ForOffer(ctx context.Context, caller models.Account, offerID int) ([]models.Application, error) {
	o, err := s.offers.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(caller, authz.ActionManageOffer, o) {
		return nil, models.ErrPermissionDenied
	}
	return s.apps.ListApplicationsByOffer(ctx, offerID)
}

// Own lists the caller's applications for the profile page.
func (s *ApplicationService) Own(ctx context.Context, caller models.Account) ([]models.Application, error) {
	return s.apps.ListApplicationsByApplicant(ctx, caller.ID)
}

// Get returns a single application by id.
func (s *ApplicationService) Get(ctx context.Context, id int) (models.Application, error) {
	return s.apps.GetApplication(ctx, id)
}
