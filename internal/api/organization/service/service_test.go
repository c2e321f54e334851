package organizationService

import (
	"CitizenVoice/internal/api/auth"
	authRepository "CitizenVoice/internal/api/auth/repository"
	"CitizenVoice/internal/api/organization"
	organizationRepository "CitizenVoice/internal/api/organization/repository"
	"CitizenVoice/internal/entity"
	"CitizenVoice/pkg/bcrypt"
	"CitizenVoice/pkg/utils"
	"errors"
	"io"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xbcrypt "golang.org/x/crypto/bcrypt"
	"golang.org/x/net/context"
)

type fakeOrgRepo struct {
	orgs       map[string]entity.Organization
	emails     map[string]bool
	getAllHits int
	committed  int
	failOrg    bool
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{orgs: map[string]entity.Organization{}, emails: map[string]bool{}}
}

func (f *fakeOrgRepo) NewClient(bool) (organizationRepository.Client, error) {
	staged := map[string]bool{}
	return organizationRepository.Client{
		Organizations: f,
		Users:         &fakeUsers{repo: f, staged: staged},
		Commit: func() error {
			f.committed++
			for e := range staged {
				f.emails[e] = true
			}
			return nil
		},
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakeOrgRepo) CreateOrganization(_ context.Context, org entity.Organization) error {
	if f.failOrg {
		return errors.New("insert failed")
	}
	f.orgs[org.ID] = org
	return nil
}

func (f *fakeOrgRepo) GetByID(_ context.Context, id string) (entity.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return entity.Organization{}, organization.ErrOrganizationNotFound
	}
	return org, nil
}

func (f *fakeOrgRepo) GetByUserID(_ context.Context, userID string) (entity.Organization, error) {
	for _, org := range f.orgs {
		if org.UserID == userID {
			return org, nil
		}
	}
	return entity.Organization{}, organization.ErrOrganizationNotFound
}

func (f *fakeOrgRepo) GetAll(context.Context) ([]entity.Organization, error) {
	f.getAllHits++
	out := make([]entity.Organization, 0, len(f.orgs))
	for _, org := range f.orgs {
		out = append(out, org)
	}
	return out, nil
}

func (f *fakeOrgRepo) UpdateOrganization(_ context.Context, org entity.Organization) error {
	if _, ok := f.orgs[org.ID]; !ok {
		return organization.ErrOrganizationNotFound
	}
	f.orgs[org.ID] = org
	return nil
}

func (f *fakeOrgRepo) DeleteOrganization(_ context.Context, id string) error {
	if _, ok := f.orgs[id]; !ok {
		return organization.ErrOrganizationNotFound
	}
	delete(f.orgs, id)
	return nil
}

// fakeUsers only tracks e-mails; uncommitted ones vanish with the client.
type fakeUsers struct {
	authRepository.Users
	repo   *fakeOrgRepo
	staged map[string]bool
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (entity.User, error) {
	if f.repo.emails[email] || f.staged[email] {
		return entity.User{Email: email}, nil
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUsers) CreateUser(_ context.Context, user entity.User) error {
	f.staged[user.Email] = true
	return nil
}

func (f *fakeUsers) AssignRole(context.Context, string, string, entity.Role) error { return nil }

type fakeRedis struct {
	store   map[string][]byte
	deletes int
}

func (f *fakeRedis) SetOTP(context.Context, string, string, time.Duration) error { return nil }
func (f *fakeRedis) GetOTP(context.Context, string) (string, error)              { return "", nil }
func (f *fakeRedis) DeleteOTP(context.Context, string) error                     { return nil }

func (f *fakeRedis) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := jsoniter.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = data
	return nil
}

func (f *fakeRedis) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	data, ok := f.store[key]
	if !ok {
		return false, nil
	}
	return true, jsoniter.Unmarshal(data, dest)
}

func (f *fakeRedis) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.store, k)
	}
	f.deletes++
	return nil
}

func newService(t *testing.T) (IOrganizationService, *fakeOrgRepo, *fakeRedis) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := newFakeOrgRepo()
	cache := &fakeRedis{store: map[string][]byte{}}
	return New(log, repo, cache, bcrypt.NewWithCost(xbcrypt.MinCost), utils.New()), repo, cache
}

func createReq(email string) organization.CreateOrganizationRequest {
	return organization.CreateOrganizationRequest{
		Email:     email,
		Password:  "org-password",
		FirstName: "Dinas",
		LastName:  "Kebersihan",
		Name:      "Dinas Kebersihan Kota",
		Category:  "Sanitation",
		Tags:      []string{" garbage ", "sanitation", "garbage", ""},
	}
}

func TestCreateOrganization(t *testing.T) {
	svc, repo, cache := newService(t)
	ctx := context.Background()

	org, err := svc.CreateOrganization(ctx, createReq("dk@example.com"))
	require.NoError(t, err)

	assert.Equal(t, []string{"garbage", "sanitation"}, org.Tags)
	assert.NotEmpty(t, org.UserID)
	assert.Equal(t, 1, repo.committed)
	assert.Equal(t, 1, cache.deletes)

	_, err = svc.CreateOrganization(ctx, createReq("dk@example.com"))
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestCreateOrganization_RollsBackUserOnFailure(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.failOrg = true

	_, err := svc.CreateOrganization(context.Background(), createReq("rb@example.com"))
	assert.ErrorIs(t, err, organization.ErrCreateOrganization)
	assert.False(t, repo.emails["rb@example.com"])
	assert.Equal(t, 0, repo.committed)
}

func TestRoutingSnapshot_CachesUntilWrite(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	org, err := svc.CreateOrganization(ctx, createReq("snap@example.com"))
	require.NoError(t, err)

	first, err := svc.RoutingSnapshot(ctx)
	require.NoError(t, err)
	second, err := svc.RoutingSnapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.getAllHits)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].Tags, second[0].Tags)

	tags := []string{"road"}
	_, err = svc.UpdateOwnOrganization(ctx, org.UserID, organization.UpdateOrganizationRequest{Tags: &tags})
	require.NoError(t, err)

	third, err := svc.RoutingSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getAllHits)
	assert.Equal(t, []string{"road"}, third[0].Tags)
}

func TestUpdateOwnOrganization_NoOrganization(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.UpdateOwnOrganization(context.Background(), "nobody", organization.UpdateOrganizationRequest{Name: "New"})
	assert.ErrorIs(t, err, organization.ErrOrganizationNotFound)
}

func TestGetOrganizationDifferenceData(t *testing.T) {
	current := entity.Organization{Name: "A", Category: "ICT", Address: "X", Tags: []string{"tech"}}

	got := GetOrganizationDifferenceData(current, organization.UpdateOrganizationRequest{Category: "Sanitation"})
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, "Sanitation", got.Category)
	assert.Equal(t, []string{"tech"}, got.Tags)

	empty := []string{}
	got = GetOrganizationDifferenceData(current, organization.UpdateOrganizationRequest{Tags: &empty})
	assert.Empty(t, got.Tags)
}
