package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/dmitrijs2005/edushare/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResourceService(t *testing.T, fake *fakeAPI, sess *models.Session) ResourceService {
	t.Helper()
	store := session.NewMemoryStore()
	if sess != nil {
		require.NoError(t, store.Save(context.Background(), *sess))
	}
	return NewResourceService(fake, NewAuthService(fake, store))
}

func teacherSession() *models.Session {
	return &models.Session{Token: "t", User: models.User{ID: 7, Username: "tina", Role: models.RoleTeacher}}
}

func validUpload() models.UploadRequest {
	return models.UploadRequest{
		Title: "Fractions", FileType: models.FileTypePDF, Subject: "Math",
		GradeLevel: "5", Country: "LV", Language: "en",
	}
}

func TestCatalog_Limit(t *testing.T) {
	fake := &fakeAPI{list: []models.Resource{{ID: 1}}}
	svc := newResourceService(t, fake, nil)

	got, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	require.Len(t, fake.listFilters, 1)
	assert.Equal(t, "limit=6", fake.listFilters[0].Query().Encode())
}

func TestSearchQuery_Filters(t *testing.T) {
	tests := []struct {
		name string
		q    SearchQuery
		want string
	}{
		{"empty", SearchQuery{}, ""},
		{"subject only", SearchQuery{Subject: "Math"}, "subject=Math"},
		{"query replaces subject", SearchQuery{Query: "Biology", Subject: "Math", Country: "LV"}, "country=LV&subject=Biology"},
		{"blank query ignored", SearchQuery{Query: "  ", Subject: "Math"}, "subject=Math"},
		{"grade", SearchQuery{GradeLevel: "5"}, "grade_level=5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Filters().Query().Encode())
		})
	}
}

func TestMine_FiltersOwnUploads(t *testing.T) {
	fake := &fakeAPI{list: []models.Resource{
		{ID: 1, UploadedBy: 7},
		{ID: 2, UploadedBy: 8},
		{ID: 3, UploadedBy: 7},
	}}
	svc := newResourceService(t, fake, teacherSession())

	got, err := svc.Mine(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	require.Len(t, fake.listFilters, 1)
	assert.Empty(t, fake.listFilters[0].Query())
}

func TestRoleGates(t *testing.T) {
	student := &models.Session{Token: "s", User: models.User{ID: 1, Role: models.RoleStudent}}

	tests := []struct {
		name string
		sess *models.Session
		want error
	}{
		{"logged out", nil, ErrLoginRequired},
		{"student", student, ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAPI{}
			svc := newResourceService(t, fake, tt.sess)
			ctx := context.Background()

			_, err := svc.Mine(ctx)
			assert.ErrorIs(t, err, tt.want)
			_, err = svc.Upload(ctx, validUpload())
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, svc.Delete(ctx, 1), tt.want)
			_, err = svc.Approve(ctx, 1)
			assert.ErrorIs(t, err, tt.want)

			assert.Empty(t, fake.listFilters)
			assert.Empty(t, fake.uploads)
			assert.Empty(t, fake.deleted)
			assert.Empty(t, fake.approved)
		})
	}
}

func TestApprove_AdminOnly(t *testing.T) {
	fake := &fakeAPI{res: &models.Resource{ID: 4, IsApproved: true}}

	svc := newResourceService(t, fake, teacherSession())
	_, err := svc.Approve(context.Background(), 4)
	assert.ErrorIs(t, err, ErrForbidden)

	admin := &models.Session{Token: "a", User: models.User{ID: 1, Role: models.RoleAdmin}}
	svc = newResourceService(t, fake, admin)
	r, err := svc.Approve(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, r.IsApproved)
	assert.Equal(t, []int64{4}, fake.approved)
}

func TestUpload(t *testing.T) {
	fake := &fakeAPI{res: &models.Resource{ID: 9}}
	svc := newResourceService(t, fake, teacherSession())

	bad := validUpload()
	bad.Title = ""
	_, err := svc.Upload(context.Background(), bad)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, fake.uploads)

	r, err := svc.Upload(context.Background(), validUpload())
	require.NoError(t, err)
	assert.Equal(t, int64(9), r.ID)
	require.Len(t, fake.uploads, 1)
	assert.Equal(t, "Fractions", fake.uploads[0].Title)
}

func TestDelete(t *testing.T) {
	fake := &fakeAPI{}
	svc := newResourceService(t, fake, teacherSession())

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.Equal(t, []int64{5}, fake.deleted)

	fake.deleteErr = errors.New("boom")
	assert.EqualError(t, svc.Delete(context.Background(), 6), "boom")
}

func TestGet(t *testing.T) {
	fake := &fakeAPI{res: &models.Resource{ID: 2, Title: "x"}}
	svc := newResourceService(t, fake, nil)

	r, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "x", r.Title)
	assert.Equal(t, []int64{2}, fake.fetched)
}
