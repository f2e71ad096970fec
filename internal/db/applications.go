package db

import (
	"context"
	"fmt"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
)

func (db *Database) CreateApplication(ctx context.Context, a models.Application) (models.Application, error) {
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO applications (message, status, applicant_id, offer_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		a.Message, a.Status, a.ApplicantID, a.OfferID,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "applications_offer_id_applicant_id_key") {
			return models.Application{}, models.ErrDuplicateApplication
		}
		return models.Application{}, err
	}

	return a, nil
}

func (db *Database) GetApplication(ctx context.Context, id int) (models.Application, error) {
	var a models.Application

	err := db.Pool.QueryRow(ctx,
		`SELECT id, message, status, applicant_id, offer_id, created_at
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Message, &a.Status, &a.ApplicantID, &a.OfferID, &a.CreatedAt)
	if err != nil {
		return models.Application{}, mapNoRows(err)
	}

	return a, nil
}

func (db *Database) ListApplicationsByOffer(ctx context.Context, offerID int) ([]models.Application, error) {
	return db.listApplications(ctx,
		`SELECT id, message, status, applicant_id, offer_id, created_at
		 FROM applications WHERE offer_id = $1 ORDER BY created_at DESC`, offerID)
}

func (db *Database) ListApplicationsByApplicant(ctx context.Context, applicantID int) ([]models.Application, error) {
	return db.listApplications(ctx,
		`SELECT id, message, status, applicant_id, offer_id, created_at
		 FROM applications WHERE applicant_id = $1 ORDER BY created_at DESC`, applicantID)
}

func (db *Database) listApplications(ctx context.Context, query string, args ...any) ([]models.Application, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(&a.ID, &a.Message, &a.Status, &a.ApplicantID, &a.OfferID,
			&a.CreatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}

	return apps, rows.Err()
}

// AcceptApplication runs the accept cascade: the application becomes
// accepted, its offer closes, every other pending application on the offer
// becomes rejected. The row lock and the pending re-check inside the
// transaction prevent a double accept.
func (db *Database) AcceptApplication(ctx context.Context, id int) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var status models.ApplicationStatus
	var offerID int
	err = tx.QueryRow(ctx,
		"SELECT status, offer_id FROM applications WHERE id = $1 FOR UPDATE", id,
	).Scan(&status, &offerID)
	if err != nil {
		return mapNoRows(err)
	}
	if status != models.ApplicationPending {
		return fmt.Errorf("application %d is not pending", id)
	}

	_, err = tx.Exec(ctx,
		"UPDATE applications SET status = $1 WHERE id = $2",
		models.ApplicationAccepted, id,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		"UPDATE offers SET status = $1 WHERE id = $2",
		models.OfferClosed, offerID,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		"UPDATE applications SET status = $1 WHERE offer_id = $2 AND id <> $3 AND status = $4",
		models.ApplicationRejected, offerID, id, models.ApplicationPending,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
