package responseRepository

import (
	responses "CitizenVoice/internal/api/response"
	"CitizenVoice/internal/entity"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

var responseColumns = []string{
	"id", "subject", "feedback_id", "organization_id", "description", "photo", "created_at", "updated_at",
}

func newMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	return New(sqlx.NewDb(db, "postgres"), log), mock
}

func TestCreateResponse_ResolvesFeedbackInOneTransaction(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO responses`).
		WithArgs("r1", "Cleared", "f1", "o1", "pile removed", nil, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE feedbacks`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	client, err := repo.NewClient(true)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, client.Responses.CreateResponse(ctx, entity.Response{
		ID:             "r1",
		Subject:        "Cleared",
		FeedbackID:     "f1",
		OrganizationID: "o1",
		Description:    "pile removed",
		CreatedAt:      now,
		UpdatedAt:      now,
	}))
	require.NoError(t, client.Feedbacks.UpdateStatus(ctx, "f1", entity.FeedbackResolved, entity.ResponseAnswered))
	require.NoError(t, client.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMock(t)
	client, err := repo.NewClient(false)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery(`FROM responses`).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(responseColumns).
			AddRow("r1", "Cleared", "f1", "o1", "pile removed", "https://bucket/responses/a.jpg", now, now))

	res, err := client.Responses.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "o1", res.OrganizationID)
	assert.Equal(t, "https://bucket/responses/a.jpg", res.Photo)

	mock.ExpectQuery(`FROM responses`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(responseColumns))

	_, err = client.Responses.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, responses.ErrResponseNotFound)
}

func TestDeleteResponse_NotFound(t *testing.T) {
	repo, mock := newMock(t)
	client, err := repo.NewClient(false)
	require.NoError(t, err)

	mock.ExpectExec(`DELETE FROM responses`).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = client.Responses.DeleteResponse(context.Background(), "r1")
	assert.ErrorIs(t, err, responses.ErrResponseNotFound)
}
