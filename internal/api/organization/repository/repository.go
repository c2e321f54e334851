package organizationRepository

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

type Organizations interface {
	CreateOrganization(c context.Context, org entity.Organization) error
	GetByID(c context.Context, id string) (entity.Organization, error)
	GetByUserID(c context.Context, userID string) (entity.Organization, error)
	GetAll(c context.Context) ([]entity.Organization, error)
	UpdateOrganization(c context.Context, org entity.Organization) error
	DeleteOrganization(c context.Context, id string) error
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
		Organizations: NewOrganizationRepository(sqlExecutor, r.log),
		Users:         authRepository.NewUserRepository(sqlExecutor, r.log),
		Commit:        commitFunc,
		Rollback:      rollbackFunc,
	}, nil
}

type Client struct {
	Organizations Organizations
	Users         authRepository.Users

	Commit   func() error
	Rollback func() error
}

func NewOrganizationRepository(q authRepository.SQLExecutor, log *logrus.Logger) Organizations {
	return &organizationRepository{q: q, log: log}
}

type organizationRepository struct {
	q   authRepository.SQLExecutor
	log *logrus.Logger
}
