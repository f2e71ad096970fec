package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wojtuswowo/charity-connect-rbac/internal/authz"
	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage"
)

// RatingService records post-interaction feedback. Ratings are append-only.
type RatingService struct {
	ratings storage.RatingStore
	apps    storage.ApplicationStore
	log     zerolog.Logger
}

func NewRatings(ratings storage.RatingStore, apps storage.ApplicationStore, log zerolog.Logger) *RatingService {
	return &RatingService{ratings: ratings, apps: apps, log: log}
}

// Rate records a rating on an application. The rating type is derived from
// the rater's role: a worker rates the donor, the applicant beneficiary
// fills the help survey. Nobody else may rate.
func (s *RatingService) Rate(ctx context.Context, caller models.Account, applicationID, score int, comment string) (models.Rating, error) {
	if score < 1 || score > 5 {
		return models.Rating{}, models.ErrInvalidScore
	}

	a, err := s.apps.GetApplication(ctx, applicationID)
	if err != nil {
		return models.Rating{}, err
	}

	ratingType, ok := authz.RatingTypeFor(caller, a)
	if !ok {
		return models.Rating{}, models.ErrPermissionDenied
	}

	r, err := s.ratings.CreateRating(ctx, models.Rating{
		Score:         score,
		Comment:       comment,
		RatingType:    ratingType,
		RaterID:       caller.ID,
		ApplicationID: applicationID,
	})
	if err != nil {
		return models.Rating{}, err
	}

	s.log.Info().Int("rating_id", r.ID).Str("rating_type", string(ratingType)).Msg("rating recorded")
	return r, nil
}

// DonorRatings lists the latest donor ratings for the guest dashboard.
func (s *RatingService) DonorRatings(ctx context.Context, limit int) ([]models.Rating, error) {
	return s.ratings.ListRatingsByType(ctx, models.RatingDonor, limit)
}
