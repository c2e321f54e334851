package feedbackRepository

import (
	authRepository "CitizenVoice/internal/api/auth/repository"
	"CitizenVoice/internal/entity"

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
	NewClient(tx bool) (Client, error)
}

type Feedbacks interface {
	CreateFeedback(c context.Context, feedback entity.Feedback) error
	GetByID(c context.Context, id string) (entity.Feedback, error)
	GetAll(c context.Context) ([]entity.Feedback, error)
	GetByUserID(c context.Context, userID string) ([]entity.Feedback, error)
	GetByOrganizationID(c context.Context, organizationID string) ([]entity.Feedback, error)
	UpdateFeedback(c context.Context, feedback entity.Feedback) error
	UpdateStatus(c context.Context, id string, fs entity.FeedbackStatus, rs entity.ResponseStatus) error
	DeleteFeedback(c context.Context, id string) error
	GetResponses(c context.Context, feedbackIDs []string) (map[string][]entity.Response, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor authRepository.SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Feedbacks: NewFeedbackRepository(sqlExecutor, r.log),
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Feedbacks Feedbacks

	Commit   func() error
	Rollback func() error
}

func NewFeedbackRepository(q authRepository.SQLExecutor, log *logrus.Logger) Feedbacks {
	return &feedbackRepository{q: q, log: log}
}

type feedbackRepository struct {
	q   authRepository.SQLExecutor
	log *logrus.Logger
}
