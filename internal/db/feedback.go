package db

import (
	"context"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
)

func (db *Database) CreateRating(ctx context.Context, r models.Rating) (models.Rating, error) {
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO ratings (score, comment, rating_type, rater_id, application_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		r.Score, r.Comment, r.RatingType, r.RaterID, r.ApplicationID,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return models.Rating{}, err
	}

	return r, nil
}

func (db *Database) ListRatingsByType(ctx context.Context, t models.RatingType, limit int) ([]models.Rating, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, score, comment, rating_type, rater_id, application_id, created_at
		 FROM ratings WHERE rating_type = $1 ORDER BY created_at DESC LIMIT NULLIF($2, 0)`,
		t, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		var r models.Rating
		if err := rows.Scan(&r.ID, &r.Score, &r.Comment, &r.RatingType, &r.RaterID,
			&r.ApplicationID, &r.CreatedAt); err != nil {
			return nil, err
		}
		ratings = append(ratings, r)
	}

	return ratings, rows.Err()
}

func (db *Database) CreateInquiry(ctx context.Context, i models.Inquiry) (models.Inquiry, error) {
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO inquiries (title, message, author_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		i.Title, i.Message, i.AuthorID,
	).Scan(&i.ID, &i.CreatedAt)
	if err != nil {
		return models.Inquiry{}, err
	}

	return i, nil
}

func (db *Database) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, title, message, author_id, created_at
		 FROM inquiries ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		var i models.Inquiry
		if err := rows.Scan(&i.ID, &i.Title, &i.Message, &i.AuthorID, &i.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, i)
	}

	return inquiries, rows.Err()
}
