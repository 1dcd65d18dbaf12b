package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/edushare/internal/client/api"
	"github.com/dmitrijs2005/edushare/internal/client/models"
)

// fakeAPI records calls and returns canned answers.
type fakeAPI struct {
	mu sync.Mutex

	loginResp *models.LoginResponse
	loginErr  error
	regUser   *models.User
	regErr    error
	list      []models.Resource
	listErr   error
	res       *models.Resource
	resErr    error
	deleteErr error

	loginReqs   []models.LoginRequest
	regReqs     []models.RegisterRequest
	listFilters []models.Filters
	uploads     []models.UploadRequest
	deleted     []int64
	approved    []int64
	fetched     []int64
}

var _ api.Client = (*fakeAPI)(nil)

func (f *fakeAPI) Login(_ context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginReqs = append(f.loginReqs, req)
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) Register(_ context.Context, req models.RegisterRequest) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regReqs = append(f.regReqs, req)
	return f.regUser, f.regErr
}

func (f *fakeAPI) ListResources(_ context.Context, filters models.Filters) ([]models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listFilters = append(f.listFilters, filters)
	return f.list, f.listErr
}

func (f *fakeAPI) GetResource(_ context.Context, id int64) (*models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, id)
	return f.res, f.resErr
}

func (f *fakeAPI) CreateResource(_ context.Context, req models.UploadRequest) (*models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, req)
	return f.res, f.resErr
}

func (f *fakeAPI) DeleteResource(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func (f *fakeAPI) ApproveResource(_ context.Context, id int64) (*models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.approved = append(f.approved, id)
	return f.res, f.resErr
}
