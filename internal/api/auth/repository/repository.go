package authRepository

import (
	"CitizenVoice/internal/entity"
	"golang.org/x/net/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

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

// Users is also embedded by the organization repository so that an
// organization and its login can be created in one transaction.
type Users interface {
	CreateUser(c context.Context, user entity.User) error
	AssignRole(c context.Context, roleID string, userID string, role entity.Role) error
	GetByID(c context.Context, id string) (entity.User, error)
	GetByEmail(c context.Context, email string) (entity.User, error)
	GetAll(c context.Context) ([]entity.User, error)
	UpdateUser(c context.Context, user entity.User) error
	UpdateRole(c context.Context, userID string, role entity.Role) error
	UpdatePassword(c context.Context, userID string, hashedPassword string) error
	UpdatePhoto(c context.Context, userID string, photo string) error
	DeleteRoles(c context.Context, userID string) error
	DeleteUser(c context.Context, id string) error
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
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
		Users:    NewUserRepository(sqlExecutor, r.log),
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Users Users

	Commit   func() error
	Rollback func() error
}

func NewUserRepository(q SQLExecutor, log *logrus.Logger) Users {
	return &userRepository{q: q, log: log}
}

type userRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
