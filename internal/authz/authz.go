// Package authz centralizes every role and ownership decision in one
// capability check, so route handlers never re-implement authorization.
package authz

import (
	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
)

// Action names a role-gated operation on a target entity.
type Action string

const (
	ActionCreateOffer  Action = "offer.create"
	ActionEditOffer    Action = "offer.edit"
	ActionDeleteOffer  Action = "offer.delete"
	ActionApproveOffer Action = "offer.approve"
	ActionRejectOffer  Action = "offer.reject"
	ActionViewOffer    Action = "offer.view"
	ActionManageOffer  Action = "offer.manage"
	ActionListPending  Action = "offer.list_pending"

	ActionApply             Action = "application.apply"
	ActionAcceptApplication Action = "application.accept"

	ActionCreateProject Action = "project.create"
	ActionEditProject   Action = "project.edit"
	ActionFinishProject Action = "project.finish"

	ActionApproveAccount Action = "account.approve"
	ActionCreateWorker   Action = "account.create_worker"

	ActionListInquiries Action = "inquiry.list"
)

// Can reports whether caller may perform action. Offer-scoped actions take
// the offer as target; actions gated on role alone take a nil target.
func Can(caller models.Account, action Action, target any) bool {
	switch action {
	case ActionCreateOffer:
		return caller.Role == models.RoleDonor || caller.Role == models.RoleAdministrator

	case ActionEditOffer, ActionDeleteOffer:
		offer, ok := target.(models.Offer)
		if !ok {
			return false
		}
		return caller.ID == offer.DonorID || caller.Role == models.RoleAdministrator

	case ActionApproveOffer, ActionRejectOffer:
		return caller.Role == models.RoleWorker

	case ActionListPending:
		return caller.Role == models.RoleWorker || caller.Role == models.RoleAdministrator

	case ActionViewOffer:
		offer, ok := target.(models.Offer)
		if !ok {
			return false
		}
		if offer.Status == models.OfferApproved {
			return true
		}
		// Non-approved offers are visible only to staff and the owner.
		return caller.Role == models.RoleAdministrator ||
			caller.Role == models.RoleWorker ||
			caller.ID == offer.DonorID

	case ActionManageOffer, ActionAcceptApplication:
		offer, ok := target.(models.Offer)
		if !ok {
			return false
		}
		return caller.ID == offer.DonorID

	case ActionApply:
		return caller.Role == models.RoleBeneficiary

	case ActionCreateProject, ActionEditProject, ActionFinishProject:
		// Ownership of projects is not enforced: any worker may edit or
		// finish any project.
		return caller.Role == models.RoleWorker

	case ActionApproveAccount, ActionListInquiries:
		return caller.Role == models.RoleWorker

	case ActionCreateWorker:
		return caller.Role == models.RoleAdministrator
	}

	return false
}

// RatingTypeFor derives the rating type from the rater's role and relation
// to the application. The second return is false when the rater may not rate
// this application at all.
func RatingTypeFor(rater models.Account, app models.Application) (models.RatingType, bool) {
	switch {
	case rater.Role == models.RoleWorker:
		return models.RatingDonor, true
	case rater.Role == models.RoleBeneficiary && rater.ID == app.ApplicantID:
		return models.RatingHelpSurvey, true
	default:
		return "", false
	}
}
