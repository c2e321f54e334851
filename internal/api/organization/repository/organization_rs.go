package organizationRepository

import (
	"CitizenVoice/internal/api/organization"
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

type OrganizationDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Name      sql.NullString `db:"name"`
	Category  sql.NullString `db:"category"`
	Address   sql.NullString `db:"address"`
	Tags      pq.StringArray `db:"tags"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *organizationRepository) CreateOrganization(ctx context.Context, org entity.Organization) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         org.ID,
		"user_id":    org.UserID,
		"name":       org.Name,
		"category":   org.Category,
		"address":    org.Address,
		"tags":       pq.StringArray(nonNil(org.Tags)),
		"created_at": org.CreatedAt,
		"updated_at": org.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateOrganization, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateOrganization")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating organization")
		return err
	}

	return nil
}

func (r *organizationRepository) GetByID(ctx context.Context, id string) (entity.Organization, error) {
	return r.getOne(ctx, "GetOrganizationByID", queryGetOrganizationByID, map[string]interface{}{"id": id})
}

func (r *organizationRepository) GetByUserID(ctx context.Context, userID string) (entity.Organization, error) {
	return r.getOne(ctx, "GetOrganizationByUserID", queryGetOrganizationByUserID, map[string]interface{}{"user_id": userID})
}

func (r *organizationRepository) getOne(ctx context.Context, op string, rawQuery string, argsKV map[string]interface{}) (entity.Organization, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var org OrganizationDB

	query, args, err := sqlx.Named(rawQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Errorf("%s named query preparation err", op)
		return entity.Organization{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&org); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warnf("%s no rows found", op)
			return entity.Organization{}, organization.ErrOrganizationNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Errorf("%s execution err", op)
		return entity.Organization{}, err
	}

	return makeOrganization(org), nil
}

func (r *organizationRepository) GetAll(ctx context.Context) ([]entity.Organization, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []OrganizationDB

	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(queryGetAllOrganizations)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllOrganizations execution err")
		return nil, err
	}

	orgs := make([]entity.Organization, 0, len(rows))
	for _, row := range rows {
		orgs = append(orgs, makeOrganization(row))
	}

	return orgs, nil
}

func (r *organizationRepository) UpdateOrganization(ctx context.Context, org entity.Organization) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         org.ID,
		"name":       org.Name,
		"category":   org.Category,
		"address":    org.Address,
		"tags":       pq.StringArray(nonNil(org.Tags)),
		"updated_at": org.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateOrganization, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateOrganization named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateOrganization execution err")
		return err
	}

	return expectRow(res)
}

func (r *organizationRepository) DeleteOrganization(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteOrganization, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteOrganization named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteOrganization execution err")
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
		return organization.ErrOrganizationNotFound
	}
	return nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func makeOrganization(o OrganizationDB) entity.Organization {
	return entity.Organization{
		ID:        o.ID.String,
		UserID:    o.UserID.String,
		Name:      o.Name.String,
		Category:  o.Category.String,
		Address:   o.Address.String,
		Tags:      nonNil(o.Tags),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
