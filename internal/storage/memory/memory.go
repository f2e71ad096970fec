// Package memory provides a thread-safe in-memory implementation of the
// storage interfaces. It is intended for tests and keeps the same uniqueness
// and cascade semantics as the PostgreSQL store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage"
)

// Store is an in-memory storage.Store.
type Store struct {
	mu           sync.RWMutex
	nextID       int
	accounts     map[int]models.Account
	projects     map[int]models.Project
	offers       map[int]models.Offer
	applications map[int]models.Application
	attachments  map[int]models.Attachment
	ratings      map[int]models.Rating
	inquiries    map[int]models.Inquiry
}

var _ storage.Store = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		nextID:       1,
		accounts:     make(map[int]models.Account),
		projects:     make(map[int]models.Project),
		offers:       make(map[int]models.Offer),
		applications: make(map[int]models.Application),
		attachments:  make(map[int]models.Attachment),
		ratings:      make(map[int]models.Rating),
		inquiries:    make(map[int]models.Inquiry),
	}
}

func (s *Store) nextIDLocked() int {
	id := s.nextID
	s.nextID++
	return id
}

// Accounts ---------------------------------------------------------------

func (s *Store) CreateAccount(_ context.Context, acct models.Account) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if existing.Email == acct.Email {
			return models.Account{}, models.ErrDuplicateEmail
		}
	}

	acct.ID = s.nextIDLocked()
	acct.CreatedAt = time.Now().UTC()
	s.accounts[acct.ID] = acct
	return acct, nil
}

func (s *Store) GetAccount(_ context.Context, id int) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.accounts[id]
	if !ok {
		return models.Account{}, models.ErrNotFound
	}
	return acct, nil
}

func (s *Store) GetAccountByEmail(_ context.Context, email string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, acct := range s.accounts {
		if acct.Email == email {
			return acct, nil
		}
	}
	return models.Account{}, models.ErrNotFound
}

func (s *Store) ListPendingAccounts(_ context.Context) ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var accounts []models.Account
	for _, acct := range s.accounts {
		if !acct.IsApproved {
			accounts = append(accounts, acct)
		}
	}
	sortNewestFirst(accounts, func(a models.Account) int { return a.ID })
	return accounts, nil
}

func (s *Store) ApproveAccount(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[id]
	if !ok {
		return models.ErrNotFound
	}
	acct.IsApproved = true
	s.accounts[id] = acct
	return nil
}

// Projects ---------------------------------------------------------------

func (s *Store) CreateProject(_ context.Context, p models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextIDLocked()
	p.CreatedAt = time.Now().UTC()
	s.projects[p.ID] = p
	return p, nil
}

func (s *Store) GetProject(_ context.Context, id int) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, models.ErrNotFound
	}
	return cloneProject(p), nil
}

func (s *Store) ListProjects(_ context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, cloneProject(p))
	}
	sortNewestFirst(projects, func(p models.Project) int { return p.ID })
	return projects, nil
}

func (s *Store) ListProjectsByStatus(_ context.Context, status models.ProjectStatus) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var projects []models.Project
	for _, p := range s.projects {
		if p.Status == status {
			projects = append(projects, cloneProject(p))
		}
	}
	sortNewestFirst(projects, func(p models.Project) int { return p.ID })
	return projects, nil
}

func (s *Store) UpdateProject(_ context.Context, id int, title, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return models.ErrNotFound
	}
	p.Title = title
	p.Description = description
	s.projects[id] = p
	return nil
}

func (s *Store) FinishProject(_ context.Context, id int, finishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return models.ErrNotFound
	}
	if p.Status != models.ProjectActive {
		return models.ErrAlreadyFinished
	}

	p.Status = models.ProjectFinished
	t := finishedAt
	p.FinishedAt = &t
	s.projects[id] = p

	for oid, o := range s.offers {
		if o.ProjectID != nil && *o.ProjectID == id {
			o.Status = models.OfferClosed
			s.offers[oid] = o
		}
	}
	return nil
}

// Offers -----------------------------------------------------------------

func (s *Store) CreateOffer(_ context.Context, o models.Offer) (models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextIDLocked()
	o.CreatedAt = time.Now().UTC()
	s.offers[o.ID] = cloneOffer(o)
	return o, nil
}

func (s *Store) GetOffer(_ context.Context, id int) (models.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.offers[id]
	if !ok {
		return models.Offer{}, models.ErrNotFound
	}
	return cloneOffer(o), nil
}

func (s *Store) UpdateOffer(_ context.Context, id int, title, description, offerType string, projectID *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.offers[id]
	if !ok {
		return models.ErrNotFound
	}
	o.Title = title
	o.Description = description
	o.OfferType = offerType
	o.ProjectID = cloneIntPtr(projectID)
	s.offers[id] = o
	return nil
}

func (s *Store) SetOfferStatus(_ context.Context, id int, status models.OfferStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.offers[id]
	if !ok {
		return models.ErrNotFound
	}
	o.Status = status
	s.offers[id] = o
	return nil
}

func (s *Store) ListOffersByStatus(_ context.Context, status models.OfferStatus) ([]models.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var offers []models.Offer
	for _, o := range s.offers {
		if o.Status == status {
			offers = append(offers, cloneOffer(o))
		}
	}
	sortNewestFirst(offers, func(o models.Offer) int { return o.ID })
	return offers, nil
}

func (s *Store) ListOffersByDonor(_ context.Context, donorID int) ([]models.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var offers []models.Offer
	for _, o := range s.offers {
		if o.DonorID == donorID {
			offers = append(offers, cloneOffer(o))
		}
	}
	sortNewestFirst(offers, func(o models.Offer) int { return o.ID })
	return offers, nil
}

func (s *Store) DeleteOfferCascade(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.offers[id]; !ok {
		return models.ErrNotFound
	}

	for aid, a := range s.applications {
		if a.OfferID == id {
			for rid, r := range s.ratings {
				if r.ApplicationID == aid {
					delete(s.ratings, rid)
				}
			}
			delete(s.applications, aid)
		}
	}
	for aid, a := range s.attachments {
		if a.OfferID == id {
			delete(s.attachments, aid)
		}
	}
	delete(s.offers, id)
	return nil
}

// Attachments ------------------------------------------------------------

func (s *Store) CreateAttachment(_ context.Context, a models.Attachment) (models.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.offers[a.OfferID]; !ok {
		return models.Attachment{}, models.ErrNotFound
	}

	a.ID = s.nextIDLocked()
	a.UploadedAt = time.Now().UTC()
	s.attachments[a.ID] = a
	return a, nil
}

func (s *Store) ListAttachmentsByOffer(_ context.Context, offerID int) ([]models.Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var attachments []models.Attachment
	for _, a := range s.attachments {
		if a.OfferID == offerID {
			attachments = append(attachments, a)
		}
	}
	sortNewestFirst(attachments, func(a models.Attachment) int { return a.ID })
	return attachments, nil
}

// Applications -----------------------------------------------------------

func (s *Store) CreateApplication(_ context.Context, a models.Application) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.offers[a.OfferID]; !ok {
		return models.Application{}, models.ErrNotFound
	}
	for _, existing := range s.applications {
		if existing.OfferID == a.OfferID && existing.ApplicantID == a.ApplicantID {
			return models.Application{}, models.ErrDuplicateApplication
		}
	}

	a.ID = s.nextIDLocked()
	a.CreatedAt = time.Now().UTC()
	s.applications[a.ID] = a
	return a, nil
}

func (s *Store) GetApplication(_ context.Context, id int) (models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applications[id]
	if !ok {
		return models.Application{}, models.ErrNotFound
	}
	return a, nil
}

func (s *Store) ListApplicationsByOffer(_ context.Context, offerID int) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var apps []models.Application
	for _, a := range s.applications {
		if a.OfferID == offerID {
			apps = append(apps, a)
		}
	}
	sortNewestFirst(apps, func(a models.Application) int { return a.ID })
	return apps, nil
}

func (s *Store) ListApplicationsByApplicant(_ context.Context, applicantID int) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var apps []models.Application
	for _, a := range s.applications {
		if a.ApplicantID == applicantID {
			apps = append(apps, a)
		}
	}
	sortNewestFirst(apps, func(a models.Application) int { return a.ID })
	return apps, nil
}

func (s *Store) AcceptApplication(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.applications[id]
	if !ok {
		return models.ErrNotFound
	}
	if app.Status != models.ApplicationPending {
		return fmt.Errorf("application %d is not pending", id)
	}
	offer, ok := s.offers[app.OfferID]
	if !ok {
		return models.ErrNotFound
	}

	app.Status = models.ApplicationAccepted
	s.applications[id] = app

	offer.Status = models.OfferClosed
	s.offers[offer.ID] = offer

	for sid, sibling := range s.applications {
		if sid != id && sibling.OfferID == offer.ID && sibling.Status == models.ApplicationPending {
			sibling.Status = models.ApplicationRejected
			s.applications[sid] = sibling
		}
	}
	return nil
}

// Ratings ----------------------------------------------------------------

func (s *Store) CreateRating(_ context.Context, r models.Rating) (models.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.applications[r.ApplicationID]; !ok {
		return models.Rating{}, models.ErrNotFound
	}

	r.ID = s.nextIDLocked()
	r.CreatedAt = time.Now().UTC()
	s.ratings[r.ID] = r
	return r, nil
}

func (s *Store) ListRatingsByType(_ context.Context, t models.RatingType, limit int) ([]models.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ratings []models.Rating
	for _, r := range s.ratings {
		if r.RatingType == t {
			ratings = append(ratings, r)
		}
	}
	sortNewestFirst(ratings, func(r models.Rating) int { return r.ID })
	if limit > 0 && len(ratings) > limit {
		ratings = ratings[:limit]
	}
	return ratings, nil
}

// Inquiries --------------------------------------------------------------

func (s *Store) CreateInquiry(_ context.Context, i models.Inquiry) (models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i.ID = s.nextIDLocked()
	i.CreatedAt = time.Now().UTC()
	i.AuthorID = cloneIntPtr(i.AuthorID)
	s.inquiries[i.ID] = i
	return i, nil
}

func (s *Store) ListInquiries(_ context.Context) ([]models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inquiries := make([]models.Inquiry, 0, len(s.inquiries))
	for _, i := range s.inquiries {
		inquiries = append(inquiries, i)
	}
	sortNewestFirst(inquiries, func(i models.Inquiry) int { return i.ID })
	return inquiries, nil
}

// Helpers ----------------------------------------------------------------

func sortNewestFirst[T any](items []T, id func(T) int) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) > id(items[j]) })
}

func cloneProject(p models.Project) models.Project {
	if p.FinishedAt != nil {
		t := *p.FinishedAt
		p.FinishedAt = &t
	}
	return p
}

func cloneOffer(o models.Offer) models.Offer {
	o.ProjectID = cloneIntPtr(o.ProjectID)
	return o
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
