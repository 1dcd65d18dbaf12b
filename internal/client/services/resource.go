package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/edushare/internal/client/api"
	"github.com/dmitrijs2005/edushare/internal/client/models"
)

// FeaturedLimit is how many resources the home view shows.
const FeaturedLimit = 6

// SearchQuery holds the student search form. A non-empty Query replaces
// Subject, the backend has no free-text search.
type SearchQuery struct {
	Query      string
	Subject    string
	GradeLevel string
	Country    string
}

// Filters converts the form into list filters.
func (q SearchQuery) Filters() models.Filters {
	f := models.Filters{
		"subject":     strings.TrimSpace(q.Subject),
		"grade_level": strings.TrimSpace(q.GradeLevel),
		"country":     strings.TrimSpace(q.Country),
	}
	if query := strings.TrimSpace(q.Query); query != "" {
		f["subject"] = query
	}
	return f
}

// ResourceService lists, uploads and manages resources. Role checks here only
// decide what the client offers; the backend enforces its own.
type ResourceService interface {
	Catalog(ctx context.Context) ([]models.Resource, error)
	Search(ctx context.Context, q SearchQuery) ([]models.Resource, error)
	List(ctx context.Context, f models.Filters) ([]models.Resource, error)
	Mine(ctx context.Context) ([]models.Resource, error)
	Get(ctx context.Context, id int64) (*models.Resource, error)
	Upload(ctx context.Context, req models.UploadRequest) (*models.Resource, error)
	Delete(ctx context.Context, id int64) error
	Approve(ctx context.Context, id int64) (*models.Resource, error)
}

type resourceService struct {
	client api.Client
	auth   AuthService
}

func NewResourceService(client api.Client, auth AuthService) ResourceService {
	return &resourceService{client: client, auth: auth}
}

func (s *resourceService) Catalog(ctx context.Context) ([]models.Resource, error) {
	return s.client.ListResources(ctx, models.Filters{"limit": strconv.Itoa(FeaturedLimit)})
}

func (s *resourceService) Search(ctx context.Context, q SearchQuery) ([]models.Resource, error) {
	return s.client.ListResources(ctx, q.Filters())
}

func (s *resourceService) List(ctx context.Context, f models.Filters) ([]models.Resource, error) {
	return s.client.ListResources(ctx, f)
}

// Mine fetches the unfiltered list and keeps the session user's uploads.
func (s *resourceService) Mine(ctx context.Context) ([]models.Resource, error) {
	sess, err := s.require(ctx, models.RoleTeacher)
	if err != nil {
		return nil, err
	}

	all, err := s.client.ListResources(ctx, nil)
	if err != nil {
		return nil, err
	}
	return models.OwnedBy(all, sess.User.ID), nil
}

func (s *resourceService) Get(ctx context.Context, id int64) (*models.Resource, error) {
	return s.client.GetResource(ctx, id)
}

func (s *resourceService) Upload(ctx context.Context, req models.UploadRequest) (*models.Resource, error) {
	if _, err := s.require(ctx, models.RoleTeacher); err != nil {
		return nil, err
	}
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	return s.client.CreateResource(ctx, req)
}

func (s *resourceService) Delete(ctx context.Context, id int64) error {
	if _, err := s.require(ctx, models.RoleTeacher); err != nil {
		return err
	}
	return s.client.DeleteResource(ctx, id)
}

func (s *resourceService) Approve(ctx context.Context, id int64) (*models.Resource, error) {
	if _, err := s.require(ctx, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.client.ApproveResource(ctx, id)
}

func (s *resourceService) require(ctx context.Context, role models.Role) (*models.Session, error) {
	sess, err := s.auth.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrLoginRequired
	}
	if !sess.HasRole(role) {
		return nil, ErrForbidden
	}
	return sess, nil
}
