package responseRepository

import (
	feedbackRepository "CitizenVoice/internal/api/feedback/repository"
	responses "CitizenVoice/internal/api/response"
	"CitizenVoice/internal/entity"
	contextPkg "CitizenVoice/pkg/context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (r *responseRepository) CreateResponse(ctx context.Context, res entity.Response) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":              res.ID,
		"subject":         res.Subject,
		"feedback_id":     res.FeedbackID,
		"organization_id": res.OrganizationID,
		"description":     res.Description,
		"photo":           sql.NullString{String: res.Photo, Valid: res.Photo != ""},
		"created_at":      res.CreatedAt,
		"updated_at":      res.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateResponse, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateResponse")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating response")
		return err
	}

	return nil
}

func (r *responseRepository) GetByID(ctx context.Context, id string) (entity.Response, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row feedbackRepository.ResponseDB

	query, args, err := sqlx.Named(queryGetResponseByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetResponseByID named query preparation err")
		return entity.Response{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"response_id": id,
			}).Warn("GetResponseByID no rows found")
			return entity.Response{}, responses.ErrResponseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetResponseByID execution err")
		return entity.Response{}, err
	}

	return feedbackRepository.MakeResponse(row), nil
}

func (r *responseRepository) GetAll(ctx context.Context) ([]entity.Response, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []feedbackRepository.ResponseDB

	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(queryGetAllResponses)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllResponses execution err")
		return nil, err
	}

	out := make([]entity.Response, 0, len(rows))
	for _, row := range rows {
		out = append(out, feedbackRepository.MakeResponse(row))
	}

	return out, nil
}

func (r *responseRepository) DeleteResponse(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteResponse, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteResponse named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteResponse execution err")
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return responses.ErrResponseNotFound
	}

	return nil
}
