package feedbackHandler

import (
	"CitizenVoice/internal/api/feedback"
	feedbackService "CitizenVoice/internal/api/feedback/service"
	"CitizenVoice/internal/entity"
	"CitizenVoice/internal/middleware"
	jwtPkg "CitizenVoice/pkg/jwt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type stubService struct {
	feedbackService.IFeedbackService
	lastMatch   feedback.MatchRequest
	lastCreator entity.UserLoginData
}

func (s *stubService) Match(_ context.Context, req feedback.MatchRequest) (feedback.MatchResponse, error) {
	s.lastMatch = req
	return feedback.MatchResponse{
		Tags: []string{"garbage"},
		Matches: []feedback.MatchResult{{
			OrganizationID: "o1",
			Name:           "Dinas Kebersihan",
			Score:          5,
			Matches:        []string{"Exact tag: garbage"},
		}},
	}, nil
}

func (s *stubService) CreateFeedback(_ context.Context, citizen entity.UserLoginData, req feedback.CreateFeedbackRequest, _ []*multipart.FileHeader) (entity.Feedback, error) {
	s.lastCreator = citizen
	return entity.Feedback{
		ID:              "f1",
		UserID:          citizen.ID,
		Category:        req.Category,
		Description:     req.Description,
		Ticket:          "A1B2C3D4E5F6",
		OrganizationIDs: []string{"o1"},
		GalleryImages:   []string{},
	}, nil
}

func (s *stubService) GetFeedbackByID(context.Context, entity.UserLoginData, string) (feedback.FeedbackResponse, error) {
	return feedback.FeedbackResponse{}, feedback.ErrFeedbackNotFound
}

func newApp(t *testing.T, svc feedbackService.IFeedbackService) *fiber.App {
	t.Helper()
	t.Setenv(jwtPkg.AccessTokenSecret, "test-secret")

	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	New(log, validator.New(), middleware.New(log), svc).Start(app.Group("/api/v1"))
	return app
}

func bearer(t *testing.T, roles ...entity.Role) string {
	t.Helper()
	token, _, err := jwtPkg.Sign(entity.UserLoginData{ID: "u1", Email: "u1@example.com", Name: "U One", Roles: roles}, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(t *testing.T, app *fiber.App, method, path, auth, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, jsoniter.Unmarshal(raw, &out))
	}
	return resp, out
}

func TestMatchEndpoint(t *testing.T) {
	svc := &stubService{}
	app := newApp(t, svc)

	resp, body := do(t, app, http.MethodPost, "/api/v1/feedbacks/match", bearer(t, entity.RoleOrganization),
		`{"category":"Sanitation","description":"garbage on the street","top_n":2}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, svc.lastMatch.TopN)
	assert.Equal(t, []interface{}{"garbage"}, body["tags"])
	require.Len(t, body["matches"], 1)
}

func TestMatchEndpoint_Validation(t *testing.T) {
	app := newApp(t, &stubService{})

	resp, body := do(t, app, http.MethodPost, "/api/v1/feedbacks/match", bearer(t, entity.RoleCitizen),
		`{"description":"garbage"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestCreateFeedbackEndpoint(t *testing.T) {
	payload := `{"category":"Sanitation","description":"garbage piling near the market","location":"Pasar Baru"}`

	t.Run("citizen", func(t *testing.T) {
		svc := &stubService{}
		app := newApp(t, svc)

		resp, body := do(t, app, http.MethodPost, "/api/v1/feedbacks", bearer(t, entity.RoleCitizen), payload)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, "u1", svc.lastCreator.ID)
		assert.Equal(t, "A1B2C3D4E5F6", body["ticket"])
		assert.Equal(t, []interface{}{"o1"}, body["organization_ids"])
	})

	t.Run("admin is not a citizen", func(t *testing.T) {
		app := newApp(t, &stubService{})

		resp, _ := do(t, app, http.MethodPost, "/api/v1/feedbacks", bearer(t, entity.RoleAdmin), payload)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("anonymous", func(t *testing.T) {
		app := newApp(t, &stubService{})

		resp, _ := do(t, app, http.MethodPost, "/api/v1/feedbacks", "", payload)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGetFeedbackByID_NotFound(t *testing.T) {
	app := newApp(t, &stubService{})

	resp, body := do(t, app, http.MethodGet, "/api/v1/feedbacks/missing", bearer(t, entity.RoleAdmin), "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "feedback not found", body["error"])
}
