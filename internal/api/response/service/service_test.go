package responseService

import (
	"CitizenVoice/internal/api/feedback"
	feedbackRepository "CitizenVoice/internal/api/feedback/repository"
	"CitizenVoice/internal/api/organization"
	organizationRepository "CitizenVoice/internal/api/organization/repository"
	responses "CitizenVoice/internal/api/response"
	responseRepository "CitizenVoice/internal/api/response/repository"
	"CitizenVoice/internal/entity"
	"CitizenVoice/pkg/utils"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

// fakeStore applies writes only when the client commits.
type fakeStore struct {
	feedbacks map[string]entity.Feedback
	orgs      []entity.Organization
	responses map[string]entity.Response
	failWrite bool
	commits   int
	rollbacks int
}

type fakeClient struct {
	store   *fakeStore
	pending []func()
}

type fakeResponses struct{ c *fakeClient }
type fakeFeedbacks struct {
	feedbackRepository.Feedbacks
	c *fakeClient
}
type fakeOrganizations struct {
	organizationRepository.Organizations
	c *fakeClient
}

func (s *fakeStore) NewClient(tx bool) (responseRepository.Client, error) {
	fc := &fakeClient{store: s}
	commit := func() error {
		for _, apply := range fc.pending {
			apply()
		}
		fc.pending = nil
		s.commits++
		return nil
	}
	rollback := func() error {
		fc.pending = nil
		s.rollbacks++
		return nil
	}
	client := responseRepository.Client{
		Responses:     &fakeResponses{c: fc},
		Feedbacks:     &fakeFeedbacks{c: fc},
		Organizations: &fakeOrganizations{c: fc},
		Commit:        commit,
		Rollback:      rollback,
	}
	if !tx {
		client.Commit = func() error { return nil }
		client.Rollback = func() error { return nil }
	}
	return client, nil
}

func (c *fakeClient) write(apply func()) {
	c.pending = append(c.pending, apply)
}

func (r *fakeResponses) CreateResponse(_ context.Context, res entity.Response) error {
	if r.c.store.failWrite {
		return errors.New("insert failed")
	}
	r.c.write(func() { r.c.store.responses[res.ID] = res })
	return nil
}

func (r *fakeResponses) GetByID(_ context.Context, id string) (entity.Response, error) {
	res, ok := r.c.store.responses[id]
	if !ok {
		return entity.Response{}, responses.ErrResponseNotFound
	}
	return res, nil
}

func (r *fakeResponses) GetAll(context.Context) ([]entity.Response, error) {
	out := make([]entity.Response, 0, len(r.c.store.responses))
	for _, res := range r.c.store.responses {
		out = append(out, res)
	}
	return out, nil
}

func (r *fakeResponses) DeleteResponse(_ context.Context, id string) error {
	if _, ok := r.c.store.responses[id]; !ok {
		return responses.ErrResponseNotFound
	}
	delete(r.c.store.responses, id)
	return nil
}

func (f *fakeFeedbacks) GetByID(_ context.Context, id string) (entity.Feedback, error) {
	fb, ok := f.c.store.feedbacks[id]
	if !ok {
		return entity.Feedback{}, feedback.ErrFeedbackNotFound
	}
	return fb, nil
}

func (f *fakeFeedbacks) UpdateStatus(_ context.Context, id string, fs entity.FeedbackStatus, rs entity.ResponseStatus) error {
	if _, ok := f.c.store.feedbacks[id]; !ok {
		return feedback.ErrFeedbackNotFound
	}
	f.c.write(func() {
		fb := f.c.store.feedbacks[id]
		fb.FeedbackStatus, fb.ResponseStatus = fs, rs
		f.c.store.feedbacks[id] = fb
	})
	return nil
}

func (o *fakeOrganizations) GetByUserID(_ context.Context, userID string) (entity.Organization, error) {
	for _, org := range o.c.store.orgs {
		if org.UserID == userID {
			return org, nil
		}
	}
	return entity.Organization{}, organization.ErrOrganizationNotFound
}

type fakeS3 struct {
	uploaded []string
	deleted  []string
	fail     bool
}

func (f *fakeS3) UploadFile(folder string, file *multipart.FileHeader) (string, error) {
	if f.fail {
		return "", errors.New("s3 down")
	}
	url := "https://bucket.s3.amazonaws.com/" + folder + "/" + file.Filename
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeS3) PresignUrl(url string) (string, error) { return url + "?signed", nil }

func (f *fakeS3) DeleteFile(url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

var (
	admin    = entity.UserLoginData{ID: "admin-1", Roles: []entity.Role{entity.RoleAdmin}}
	sanitOrg = entity.UserLoginData{ID: "org-user-1", Roles: []entity.Role{entity.RoleOrganization}}
	roadsOrg = entity.UserLoginData{ID: "org-user-2", Roles: []entity.Role{entity.RoleOrganization}}
	loneOrg  = entity.UserLoginData{ID: "org-user-3", Roles: []entity.Role{entity.RoleOrganization}}
)

func newFixture(t *testing.T) (IResponseService, *fakeStore, *fakeS3) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := &fakeStore{
		feedbacks: map[string]entity.Feedback{
			"fb-1": {
				ID:              "fb-1",
				OrganizationIDs: []string{"o-sanitation"},
				FeedbackStatus:  entity.FeedbackUnresolved,
				ResponseStatus:  entity.ResponsePending,
			},
			"fb-closed": {
				ID:              "fb-closed",
				OrganizationIDs: []string{"o-sanitation"},
				FeedbackStatus:  entity.FeedbackUnresolved,
				ResponseStatus:  entity.ResponseClosed,
			},
		},
		orgs: []entity.Organization{
			{ID: "o-sanitation", UserID: "org-user-1"},
			{ID: "o-roads", UserID: "org-user-2"},
		},
		responses: map[string]entity.Response{},
	}
	s3Client := &fakeS3{}

	return New(log, store, s3Client, utils.New()), store, s3Client
}

func photo(name string, contentType string) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Size: 1024, Header: h}
}

func request(feedbackID string) responses.CreateResponseRequest {
	return responses.CreateResponseRequest{
		FeedbackID:  feedbackID,
		Subject:     "Garbage collected",
		Description: "The pile near the market was cleared this morning.",
	}
}

func TestCreateResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the feedback", func(t *testing.T) {
		svc, store, s3Client := newFixture(t)

		res, err := svc.CreateResponse(ctx, sanitOrg, request("fb-1"), photo("after.jpg", "image/jpeg"))
		require.NoError(t, err)

		assert.Equal(t, "o-sanitation", res.OrganizationID)
		assert.Equal(t, "fb-1", res.FeedbackID)
		assert.Equal(t, "https://bucket.s3.amazonaws.com/responses/after.jpg", res.Photo)
		assert.Len(t, s3Client.uploaded, 1)

		fb := store.feedbacks["fb-1"]
		assert.Equal(t, entity.FeedbackResolved, fb.FeedbackStatus)
		assert.Equal(t, entity.ResponseAnswered, fb.ResponseStatus)
		assert.Contains(t, store.responses, res.ID)
		assert.Equal(t, 1, store.commits)
	})

	t.Run("photo is optional", func(t *testing.T) {
		svc, _, s3Client := newFixture(t)

		res, err := svc.CreateResponse(ctx, sanitOrg, request("fb-1"), nil)
		require.NoError(t, err)
		assert.Empty(t, res.Photo)
		assert.Empty(t, s3Client.uploaded)
	})

	t.Run("caller without organization", func(t *testing.T) {
		svc, store, _ := newFixture(t)

		_, err := svc.CreateResponse(ctx, loneOrg, request("fb-1"), nil)
		assert.ErrorIs(t, err, organization.ErrOrganizationNotFound)
		assert.Equal(t, 1, store.rollbacks)
	})

	t.Run("unknown feedback", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		_, err := svc.CreateResponse(ctx, sanitOrg, request("missing"), nil)
		assert.ErrorIs(t, err, feedback.ErrFeedbackNotFound)
	})

	t.Run("feedback routed elsewhere", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		_, err := svc.CreateResponse(ctx, roadsOrg, request("fb-1"), nil)
		assert.ErrorIs(t, err, responses.ErrNotRoutedToOrg)
	})

	t.Run("closed feedback", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		_, err := svc.CreateResponse(ctx, sanitOrg, request("fb-closed"), nil)
		assert.ErrorIs(t, err, responses.ErrFeedbackClosed)
	})

	t.Run("non image photo", func(t *testing.T) {
		svc, _, s3Client := newFixture(t)

		_, err := svc.CreateResponse(ctx, sanitOrg, request("fb-1"), photo("notes.pdf", "application/pdf"))
		assert.ErrorIs(t, err, responses.ErrInvalidFileType)
		assert.Empty(t, s3Client.uploaded)
	})

	t.Run("insert failure rolls back and discards the photo", func(t *testing.T) {
		svc, store, s3Client := newFixture(t)
		store.failWrite = true

		_, err := svc.CreateResponse(ctx, sanitOrg, request("fb-1"), photo("after.jpg", "image/jpeg"))
		assert.ErrorIs(t, err, responses.ErrCreateResponse)

		assert.Equal(t, 1, store.rollbacks)
		assert.Equal(t, s3Client.uploaded, s3Client.deleted)
		assert.Equal(t, entity.FeedbackUnresolved, store.feedbacks["fb-1"].FeedbackStatus)
		assert.Empty(t, store.responses)
	})
}

func TestGetResponseByID(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFixture(t)

	created, err := svc.CreateResponse(ctx, sanitOrg, request("fb-1"), photo("after.jpg", "image/jpeg"))
	require.NoError(t, err)

	got, err := svc.GetResponseByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Photo+"?signed", got.Photo)

	_, err = svc.GetResponseByID(ctx, "missing")
	assert.ErrorIs(t, err, responses.ErrResponseNotFound)

	list, err := svc.GetResponses(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("other organization is forbidden", func(t *testing.T) {
		svc, store, _ := newFixture(t)
		created, err := svc.CreateResponse(ctx, sanitOrg, request("fb-1"), nil)
		require.NoError(t, err)

		err = svc.DeleteResponse(ctx, roadsOrg, created.ID)
		assert.ErrorIs(t, err, responses.ErrNotResponseOwner)
		assert.Contains(t, store.responses, created.ID)
	})

	t.Run("author removes it with its photo", func(t *testing.T) {
		svc, store, s3Client := newFixture(t)
		created, err := svc.CreateResponse(ctx, sanitOrg, request("fb-1"), photo("after.jpg", "image/jpeg"))
		require.NoError(t, err)

		require.NoError(t, svc.DeleteResponse(ctx, sanitOrg, created.ID))
		assert.NotContains(t, store.responses, created.ID)
		assert.Equal(t, []string{created.Photo}, s3Client.deleted)
	})

	t.Run("admin", func(t *testing.T) {
		svc, _, _ := newFixture(t)
		created, err := svc.CreateResponse(ctx, sanitOrg, request("fb-1"), nil)
		require.NoError(t, err)

		require.NoError(t, svc.DeleteResponse(ctx, admin, created.ID))
		assert.ErrorIs(t, svc.DeleteResponse(ctx, admin, created.ID), responses.ErrResponseNotFound)
	})
}
