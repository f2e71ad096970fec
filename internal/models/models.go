package models

import "time"

// Role identifies what an account is allowed to do. One table carries all
// four kinds of users; the role column is the discriminator.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleWorker        Role = "worker"
	RoleDonor         Role = "donor"
	RoleBeneficiary   Role = "beneficiary"
)

// SelfServiceRole reports whether accounts of this role may be created
// through public registration. Workers come from an administrator, the
// administrator comes from the bootstrap command.
func (r Role) SelfServiceRole() bool {
	return r == RoleDonor || r == RoleBeneficiary
}

type Account struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         Role      `json:"role"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectFinished ProjectStatus = "finished"
)

type Project struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	WorkerID    int           `json:"worker_id"`
	CreatedAt   time.Time     `json:"created_at"`
	// FinishedAt is set exactly once, when the project transitions to
	// finished.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferApproved OfferStatus = "approved"
	OfferClosed   OfferStatus = "closed"
)

type Offer struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	OfferType   string      `json:"offer_type"`
	Status      OfferStatus `json:"status"`
	DonorID     int         `json:"donor_id"`
	// ProjectID is nil for standalone offers.
	ProjectID *int      `json:"project_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID          int               `json:"id"`
	Message     string            `json:"message"`
	Status      ApplicationStatus `json:"status"`
	ApplicantID int               `json:"applicant_id"`
	OfferID     int               `json:"offer_id"`
	CreatedAt   time.Time         `json:"created_at"`
}

type Attachment struct {
	ID         int       `json:"id"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	OfferID    int       `json:"offer_id"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// RatingType is derived from the rater's role and relation to the
// application, never supplied by the caller.
type RatingType string

const (
	RatingDonor      RatingType = "donor_rating"
	RatingHelpSurvey RatingType = "help_survey"
)

type Rating struct {
	ID            int        `json:"id"`
	Score         int        `json:"score"`
	Comment       string     `json:"comment,omitempty"`
	RatingType    RatingType `json:"rating_type"`
	RaterID       int        `json:"rater_id"`
	ApplicationID int        `json:"application_id"`
	CreatedAt     time.Time  `json:"created_at"`
}

type Inquiry struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	// AuthorID is nil for anonymous submissions.
	AuthorID  *int      `json:"author_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
