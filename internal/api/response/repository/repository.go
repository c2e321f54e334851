package responseRepository

import (
	authRepository "CitizenVoice/internal/api/auth/repository"
	feedbackRepository "CitizenVoice/internal/api/feedback/repository"
	organizationRepository "CitizenVoice/internal/api/organization/repository"
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

type Responses interface {
	CreateResponse(c context.Context, res entity.Response) error
	GetByID(c context.Context, id string) (entity.Response, error)
	GetAll(c context.Context) ([]entity.Response, error)
	DeleteResponse(c context.Context, id string) error
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
		Responses:     &responseRepository{q: sqlExecutor, log: r.log},
		Feedbacks:     feedbackRepository.NewFeedbackRepository(sqlExecutor, r.log),
		Organizations: organizationRepository.NewOrganizationRepository(sqlExecutor, r.log),
		Commit:        commitFunc,
		Rollback:      rollbackFunc,
	}, nil
}

type Client struct {
	Responses     Responses
	Feedbacks     feedbackRepository.Feedbacks
	Organizations organizationRepository.Organizations

	Commit   func() error
	Rollback func() error
}

type responseRepository struct {
	q   authRepository.SQLExecutor
	log *logrus.Logger
}
