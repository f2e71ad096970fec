package db

import (
	"context"
	"time"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
)

func (db *Database) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, status, worker_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		p.Title, p.Description, p.Status, p.WorkerID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return models.Project{}, err
	}

	return p, nil
}

func (db *Database) GetProject(ctx context.Context, id int) (models.Project, error) {
	var p models.Project

	err := db.Pool.QueryRow(ctx,
		`SELECT id, title, description, status, worker_id, created_at, finished_at
		 FROM projects WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.WorkerID, &p.CreatedAt, &p.FinishedAt)
	if err != nil {
		return models.Project{}, mapNoRows(err)
	}

	return p, nil
}

func (db *Database) ListProjects(ctx context.Context) ([]models.Project, error) {
	return db.listProjects(ctx,
		`SELECT id, title, description, status, worker_id, created_at, finished_at
		 FROM projects ORDER BY created_at DESC`)
}

func (db *Database) ListProjectsByStatus(ctx context.Context, status models.ProjectStatus) ([]models.Project, error) {
	return db.listProjects(ctx,
		`SELECT id, title, description, status, worker_id, created_at, finished_at
		 FROM projects WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (db *Database) listProjects(ctx context.Context, query string, args ...any) ([]models.Project, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.WorkerID,
			&p.CreatedAt, &p.FinishedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (db *Database) UpdateProject(ctx context.Context, id int, title, description string) error {
	tag, err := db.Pool.Exec(ctx,
		"UPDATE projects SET title = $1, description = $2 WHERE id = $3",
		title, description, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// FinishProject marks the project finished and closes all its offers in one
// transaction. The active check runs inside the transaction so two
// concurrent finishes cannot both succeed.
func (db *Database) FinishProject(ctx context.Context, id int, finishedAt time.Time) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var status models.ProjectStatus
	err = tx.QueryRow(ctx,
		"SELECT status FROM projects WHERE id = $1 FOR UPDATE", id,
	).Scan(&status)
	if err != nil {
		return mapNoRows(err)
	}
	if status != models.ProjectActive {
		return models.ErrAlreadyFinished
	}

	_, err = tx.Exec(ctx,
		"UPDATE projects SET status = $1, finished_at = $2 WHERE id = $3",
		models.ProjectFinished, finishedAt, id,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		"UPDATE offers SET status = $1 WHERE project_id = $2",
		models.OfferClosed, id,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
