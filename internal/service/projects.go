package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wojtuswowo/charity-connect-rbac/internal/authz"
	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage"
)

// ProjectService manages charity projects and the finish cascade.
type ProjectService struct {
	store storage.ProjectStore
	log   zerolog.Logger
}

func NewProjects(store storage.ProjectStore, log zerolog.Logger) *ProjectService {
	return &ProjectService{store: store, log: log}
}

// Create opens a new active project owned by the calling worker.
func (s *ProjectService) Create(ctx context.Context, caller models.Account, title, description string) (models.Project, error) {
	if !authz.Can(caller, authz.ActionCreateProject, nil) {
		return models.Project{}, models.ErrPermissionDenied
	}

	p, err := s.store.CreateProject(ctx, models.Project{
		Title:       title,
		Description: description,
		Status:      models.ProjectActive,
		WorkerID:    caller.ID,
	})
	if err != nil {
		return models.Project{}, err
	}

	s.log.Info().Int("project_id", p.ID).Int("worker_id", caller.ID).Msg("project created")
	return p, nil
}

// Edit updates title and description. Any worker may edit any project;
// ownership is intentionally not checked.
func (s *ProjectService) Edit(ctx context.Context, caller models.Account, id int, title, description string) error {
	if !authz.Can(caller, authz.ActionEditProject, nil) {
		return models.ErrPermissionDenied
	}
	return s.store.UpdateProject(ctx, id, title, description)
}

// Finish transitions the project to finished and closes every offer linked
// to it. Finishing twice yields ErrAlreadyFinished.
func (s *ProjectService) Finish(ctx context.Context, caller models.Account, id int) error {
	if !authz.Can(caller, authz.ActionFinishProject, nil) {
		return models.ErrPermissionDenied
	}

	if err := s.store.FinishProject(ctx, id, time.Now().UTC()); err != nil {
		return err
	}

	s.log.Info().Int("project_id", id).Int("worker_id", caller.ID).Msg("project finished, linked offers closed")
	return nil
}

func (s *ProjectService) Get(ctx context.Context, id int) (models.Project, error) {
	return s.store.GetProject(ctx, id)
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.store.ListProjects(ctx)
}

// Finished lists finished projects for the guest dashboard.
func (s *ProjectService) Finished(ctx context.Context) ([]models.Project, error) {
	return s.store.ListProjectsByStatus(ctx, models.ProjectFinished)
}
