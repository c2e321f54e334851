package statisticRepository

import (
	authRepository "CitizenVoice/internal/api/auth/repository"
	organizationRepository "CitizenVoice/internal/api/organization/repository"
	"CitizenVoice/internal/entity"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient() Client
}

// FeedbackStatus is the slice of a feedback row the counters look at.
type FeedbackStatus struct {
	CreatedAt      time.Time
	FeedbackStatus entity.FeedbackStatus
	ResponseStatus entity.ResponseStatus
}

// Statistics reads creation timestamps in the half-open range [from, to).
type Statistics interface {
	UsersCreated(c context.Context, role entity.Role, from, to time.Time) ([]time.Time, error)
	FeedbacksCreated(c context.Context, from, to time.Time) ([]time.Time, error)
	FeedbacksByUser(c context.Context, userID string, from, to time.Time) ([]FeedbackStatus, error)
	FeedbacksByOrganization(c context.Context, organizationID string, from, to time.Time) ([]FeedbackStatus, error)
}

type Client struct {
	Statistics    Statistics
	Organizations organizationRepository.Organizations
}

// Statistics are read-only, so the client never opens a transaction.
func (r *repository) NewClient() Client {
	return Client{
		Statistics:    &statisticRepository{q: r.DB, log: r.log},
		Organizations: organizationRepository.NewOrganizationRepository(r.DB, r.log),
	}
}

type statisticRepository struct {
	q   authRepository.SQLExecutor
	log *logrus.Logger
}
