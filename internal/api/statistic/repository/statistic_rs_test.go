package statisticRepository

import (
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

func newMockClient(t *testing.T) (Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	return New(sqlx.NewDb(db, "postgres"), log).NewClient(), mock
}

func TestUsersCreated_FiltersByRoleAndRange(t *testing.T) {
	client, mock := newMockClient(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	created := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)

	mock.ExpectQuery(`FROM users u`).
		WithArgs("CITIZEN", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	got, err := client.Statistics.UsersCreated(context.Background(), entity.RoleCitizen, from, to)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{created}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbacksByOrganization_UsesArrayContainment(t *testing.T) {
	client, mock := newMockClient(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	created := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`organization_ids @>`).
		WithArgs(`{"o1"}`, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "feedback_status", "response_status"}).
			AddRow(created, "RESOLVED", "ANSWERED"))

	got, err := client.Statistics.FeedbacksByOrganization(context.Background(), "o1", from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entity.FeedbackResolved, got[0].FeedbackStatus)
	assert.Equal(t, entity.ResponseAnswered, got[0].ResponseStatus)
}
