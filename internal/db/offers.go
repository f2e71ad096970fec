package db

import (
	"context"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
)

func (db *Database) CreateOffer(ctx context.Context, o models.Offer) (models.Offer, error) {
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO offers (title, description, offer_type, status, donor_id, project_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		o.Title, o.Description, o.OfferType, o.Status, o.DonorID, o.ProjectID,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return models.Offer{}, err
	}

	return o, nil
}

func (db *Database) GetOffer(ctx context.Context, id int) (models.Offer, error) {
	var o models.Offer

	err := db.Pool.QueryRow(ctx,
		`SELECT id, title, description, offer_type, status, donor_id, project_id, created_at
		 FROM offers WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.Title, &o.Description, &o.OfferType, &o.Status, &o.DonorID,
		&o.ProjectID, &o.CreatedAt)
	if err != nil {
		return models.Offer{}, mapNoRows(err)
	}

	return o, nil
}

func (db *Database) UpdateOffer(ctx context.Context, id int, title, description, offerType string, projectID *int) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE offers SET title = $1, description = $2, offer_type = $3, project_id = $4
		 WHERE id = $5`,
		title, description, offerType, projectID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (db *Database) SetOfferStatus(ctx context.Context, id int, status models.OfferStatus) error {
	tag, err := db.Pool.Exec(ctx,
		"UPDATE offers SET status = $1 WHERE id = $2", status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (db *Database) ListOffersByStatus(ctx context.Context, status models.OfferStatus) ([]models.Offer, error) {
	return db.listOffers(ctx,
		`SELECT id, title, description, offer_type, status, donor_id, project_id, created_at
		 FROM offers WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (db *Database) ListOffersByDonor(ctx context.Context, donorID int) ([]models.Offer, error) {
	return db.listOffers(ctx,
		`SELECT id, title, description, offer_type, status, donor_id, project_id, created_at
		 FROM offers WHERE donor_id = $1 ORDER BY created_at DESC`, donorID)
}

func (db *Database) listOffers(ctx context.Context, query string, args ...any) ([]models.Offer, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		var o models.Offer
		if err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.OfferType, &o.Status,
			&o.DonorID, &o.ProjectID, &o.CreatedAt); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, rows.Err()
}

// DeleteOfferCascade removes the offer with every application and attachment
// referencing it. There is no declarative cascade on the schema; the order
// and the transaction here are the guarantee.
func (db *Database) DeleteOfferCascade(ctx context.Context, id int) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		"DELETE FROM ratings WHERE application_id IN (SELECT id FROM applications WHERE offer_id = $1)", id,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, "DELETE FROM applications WHERE offer_id = $1", id)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, "DELETE FROM attachments WHERE offer_id = $1", id)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, "DELETE FROM offers WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (db *Database) CreateAttachment(ctx context.Context, a models.Attachment) (models.Attachment, error) {
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO attachments (filename, url, offer_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, uploaded_at`,
		a.Filename, a.URL, a.OfferID,
	).Scan(&a.ID, &a.UploadedAt)
	if err != nil {
		return models.Attachment{}, err
	}

	return a, nil
}

func (db *Database) ListAttachmentsByOffer(ctx context.Context, offerID int) ([]models.Attachment, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, filename, url, offer_id, uploaded_at
		 FROM attachments WHERE offer_id = $1 ORDER BY uploaded_at DESC`,
		offerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []models.Attachment
	for rows.Next() {
		var a models.Attachment
		if err := rows.Scan(&a.ID, &a.Filename, &a.URL, &a.OfferID, &a.UploadedAt); err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}

	return attachments, rows.Err()
}
