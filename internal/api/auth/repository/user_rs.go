package authRepository

import (
	"CitizenVoice/database/postgres"
	"CitizenVoice/internal/api/auth"
	"CitizenVoice/internal/entity"
	contextPkg "CitizenVoice/pkg/context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type UserDB struct {
	ID          sql.NullString `db:"id"`
	Email       sql.NullString `db:"email"`
	FirstName   sql.NullString `db:"first_name"`
	LastName    sql.NullString `db:"last_name"`
	Password    sql.NullString `db:"password"`
	PhoneNumber sql.NullString `db:"phone_number"`
	Photo       sql.NullString `db:"photo"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type userRoleDB struct {
	UserID string `db:"user_id"`
	Role   string `db:"role"`
}

func (r *userRepository) exec(ctx context.Context, op string, rawQuery string, argsKV map[string]interface{}) (sql.Result, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(rawQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Errorf("%s named query preparation err", op)
		return nil, err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Errorf("%s execution err", op)
		return nil, err
	}

	return res, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user entity.User) error {
	_, err := r.exec(ctx, "CreateUser", queryCreateUser, map[string]interface{}{
		"id":           user.ID,
		"email":        user.Email,
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"password":     user.Password,
		"phone_number": nullString(user.PhoneNumber),
		"photo":        nullString(user.Photo),
		"created_at":   user.CreatedAt,
		"updated_at":   user.UpdatedAt,
	})
	if postgres.IsUniqueViolation(err) {
		return auth.ErrEmailAlreadyExists
	}
	return err
}

func (r *userRepository) AssignRole(ctx context.Context, roleID string, userID string, role entity.Role) error {
	_, err := r.exec(ctx, "AssignRole", queryAssignRole, map[string]interface{}{
		"id":      roleID,
		"user_id": userID,
		"role":    string(role),
	})
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (entity.User, error) {
	return r.getOne(ctx, "GetByID", queryGetByID, map[string]interface{}{"id": id})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	return r.getOne(ctx, "GetByEmail", queryGetByEmail, map[string]interface{}{"email": email})
}

func (r *userRepository) getOne(ctx context.Context, op string, rawQuery string, argsKV map[string]interface{}) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var user UserDB

	query, args, err := sqlx.Named(rawQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Errorf("%s named query preparation err", op)
		return entity.User{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warnf("%s no rows found", op)
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Errorf("%s execution err", op)
		return entity.User{}, err
	}

	users, err := r.withRoles(ctx, []UserDB{user})
	if err != nil {
		return entity.User{}, err
	}

	return users[0], nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []UserDB

	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(queryGetAll)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll execution err")
		return nil, err
	}

	return r.withRoles(ctx, rows)
}

func (r *userRepository) withRoles(ctx context.Context, rows []UserDB) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	users := make([]entity.User, 0, len(rows))
	if len(rows) == 0 {
		return users, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID.String)
	}

	query, args, err := sqlx.Named(queryGetRolesByUserIDs, map[string]interface{}{
		"user_ids": pq.Array(ids),
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRolesByUserIDs named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var roleRows []userRoleDB
	if err := r.q.SelectContext(ctx, &roleRows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRolesByUserIDs execution err")
		return nil, err
	}

	roles := make(map[string][]entity.Role, len(rows))
	for _, rr := range roleRows {
		roles[rr.UserID] = append(roles[rr.UserID], entity.Role(rr.Role))
	}

	for _, row := range rows {
		user := makeUser(row)
		user.Roles = roles[user.ID]
		users = append(users, user)
	}

	return users, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user entity.User) error {
	res, err := r.exec(ctx, "UpdateUser", queryUpdateUser, map[string]interface{}{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"updated_at": user.UpdatedAt,
	})
	if postgres.IsUniqueViolation(err) {
		return auth.ErrEmailAlreadyExists
	}
	if err != nil {
		return err
	}
	return expectRow(res)
}

func (r *userRepository) UpdateRole(ctx context.Context, userID string, role entity.Role) error {
	_, err := r.exec(ctx, "UpdateRole", queryUpdateRole, map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
	})
	return err
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID string, hashedPassword string) error {
	res, err := r.exec(ctx, "UpdatePassword", queryUpdatePassword, map[string]interface{}{
		"id":         userID,
		"password":   hashedPassword,
		"updated_at": time.Now(),
	})
	if err != nil {
		return err
	}
	return expectRow(res)
}

func (r *userRepository) UpdatePhoto(ctx context.Context, userID string, photo string) error {
	res, err := r.exec(ctx, "UpdatePhoto", queryUpdatePhoto, map[string]interface{}{
		"id":         userID,
		"photo":      photo,
		"updated_at": time.Now(),
	})
	if err != nil {
		return err
	}
	return expectRow(res)
}

func (r *userRepository) DeleteRoles(ctx context.Context, userID string) error {
	_, err := r.exec(ctx, "DeleteRoles", queryDeleteRoles, map[string]interface{}{
		"user_id": userID,
	})
	return err
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	res, err := r.exec(ctx, "DeleteUser", queryDeleteUser, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return err
	}
	return expectRow(res)
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func makeUser(u UserDB) entity.User {
	return entity.User{
		ID:          u.ID.String,
		Email:       u.Email.String,
		FirstName:   u.FirstName.String,
		LastName:    u.LastName.String,
		Password:    u.Password.String,
		PhoneNumber: u.PhoneNumber.String,
		Photo:       u.Photo.String,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
