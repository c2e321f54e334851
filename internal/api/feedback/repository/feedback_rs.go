package feedbackRepository

import (
	"CitizenVoice/internal/api/feedback"
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

type FeedbackDB struct {
	ID              sql.NullString `db:"id"`
	UserID          sql.NullString `db:"user_id"`
	Category        sql.NullString `db:"category"`
	Description     sql.NullString `db:"description"`
	Location        sql.NullString `db:"location"`
	Ticket          sql.NullString `db:"ticket"`
	GalleryImages   pq.StringArray `db:"gallery_images"`
	PhoneNumber     sql.NullString `db:"phone_number"`
	OrganizationIDs pq.StringArray `db:"organization_ids"`
	FeedbackStatus  sql.NullString `db:"feedback_status"`
	ResponseStatus  sql.NullString `db:"response_status"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type ResponseDB struct {
	ID             sql.NullString `db:"id"`
	Subject        sql.NullString `db:"subject"`
	FeedbackID     sql.NullString `db:"feedback_id"`
	OrganizationID sql.NullString `db:"organization_id"`
	Description    sql.NullString `db:"description"`
	Photo          sql.NullString `db:"photo"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r *feedbackRepository) named(ctx context.Context, op string, rawQuery string, argsKV map[string]interface{}) (string, []interface{}, error) {
	query, args, err := sqlx.Named(rawQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Errorf("%s named query preparation err", op)
		return "", nil, err
	}
	return r.q.Rebind(query), args, nil
}

func (r *feedbackRepository) CreateFeedback(ctx context.Context, fb entity.Feedback) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := r.named(ctx, "CreateFeedback", queryCreateFeedback, map[string]interface{}{
		"id":               fb.ID,
		"user_id":          fb.UserID,
		"category":         fb.Category,
		"description":      fb.Description,
		"location":         fb.Location,
		"ticket":           fb.Ticket,
		"gallery_images":   pq.StringArray(nonNil(fb.GalleryImages)),
		"phone_number":     sql.NullString{String: fb.PhoneNumber, Valid: fb.PhoneNumber != ""},
		"organization_ids": pq.StringArray(nonNil(fb.OrganizationIDs)),
		"feedback_status":  string(fb.FeedbackStatus),
		"response_status":  string(fb.ResponseStatus),
		"created_at":       fb.CreatedAt,
		"updated_at":       fb.UpdatedAt,
	})
	if err != nil {
		return err
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating feedback")
		return err
	}

	return nil
}

func (r *feedbackRepository) GetByID(ctx context.Context, id string) (entity.Feedback, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var fb FeedbackDB

	query, args, err := r.named(ctx, "GetFeedbackByID", queryGetFeedbackByID, map[string]interface{}{"id": id})
	if err != nil {
		return entity.Feedback{}, err
	}

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&fb); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"feedback_id": id,
			}).Warn("GetFeedbackByID no rows found")
			return entity.Feedback{}, feedback.ErrFeedbackNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFeedbackByID execution err")
		return entity.Feedback{}, err
	}

	return makeFeedback(fb), nil
}

func (r *feedbackRepository) GetAll(ctx context.Context) ([]entity.Feedback, error) {
	return r.list(ctx, "GetAllFeedbacks", queryGetAllFeedbacks, map[string]interface{}{})
}

func (r *feedbackRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Feedback, error) {
	return r.list(ctx, "GetFeedbacksByUserID", queryGetFeedbacksByUserID, map[string]interface{}{
		"user_id": userID,
	})
}

func (r *feedbackRepository) GetByOrganizationID(ctx context.Context, organizationID string) ([]entity.Feedback, error) {
	return r.list(ctx, "GetFeedbacksByOrganizationID", queryGetFeedbacksByOrganizationID, map[string]interface{}{
		"organization_ids": pq.StringArray{organizationID},
	})
}

func (r *feedbackRepository) list(ctx context.Context, op string, rawQuery string, argsKV map[string]interface{}) ([]entity.Feedback, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []FeedbackDB

	query, args, err := r.named(ctx, op, rawQuery, argsKV)
	if err != nil {
		return nil, err
	}

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Errorf("%s execution err", op)
		return nil, err
	}

	feedbacks := make([]entity.Feedback, 0, len(rows))
	for _, row := range rows {
		feedbacks = append(feedbacks, makeFeedback(row))
	}

	return feedbacks, nil
}

func (r *feedbackRepository) UpdateFeedback(ctx context.Context, fb entity.Feedback) error {
	return r.execOne(ctx, "UpdateFeedback", queryUpdateFeedback, map[string]interface{}{
		"id":           fb.ID,
		"category":     fb.Category,
		"description":  fb.Description,
		"location":     fb.Location,
		"phone_number": sql.NullString{String: fb.PhoneNumber, Valid: fb.PhoneNumber != ""},
		"updated_at":   fb.UpdatedAt,
	})
}

func (r *feedbackRepository) UpdateStatus(ctx context.Context, id string, fs entity.FeedbackStatus, rs entity.ResponseStatus) error {
	return r.execOne(ctx, "UpdateFeedbackStatus", queryUpdateFeedbackStatus, map[string]interface{}{
		"id":              id,
		"feedback_status": string(fs),
		"response_status": string(rs),
		"updated_at":      time.Now(),
	})
}

func (r *feedbackRepository) DeleteFeedback(ctx context.Context, id string) error {
	return r.execOne(ctx, "DeleteFeedback", queryDeleteFeedback, map[string]interface{}{"id": id})
}

func (r *feedbackRepository) execOne(ctx context.Context, op string, rawQuery string, argsKV map[string]interface{}) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := r.named(ctx, op, rawQuery, argsKV)
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Errorf("%s execution err", op)
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return feedback.ErrFeedbackNotFound
	}

	return nil
}

func (r *feedbackRepository) GetResponses(ctx context.Context, feedbackIDs []string) (map[string][]entity.Response, error) {
	requestID := contextPkg.GetRequestID(ctx)
	out := make(map[string][]entity.Response, len(feedbackIDs))
	if len(feedbackIDs) == 0 {
		return out, nil
	}

	query, args, err := r.named(ctx, "GetResponsesByFeedbackIDs", queryGetResponsesByFeedbackIDs, map[string]interface{}{
		"feedback_ids": pq.Array(feedbackIDs),
	})
	if err != nil {
		return nil, err
	}

	var rows []ResponseDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetResponsesByFeedbackIDs execution err")
		return nil, err
	}

	for _, row := range rows {
		res := MakeResponse(row)
		out[res.FeedbackID] = append(out[res.FeedbackID], res)
	}

	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func makeFeedback(f FeedbackDB) entity.Feedback {
	return entity.Feedback{
		ID:              f.ID.String,
		UserID:          f.UserID.String,
		Category:        f.Category.String,
		Description:     f.Description.String,
		Location:        f.Location.String,
		Ticket:          f.Ticket.String,
		GalleryImages:   nonNil(f.GalleryImages),
		PhoneNumber:     f.PhoneNumber.String,
		OrganizationIDs: nonNil(f.OrganizationIDs),
		FeedbackStatus:  entity.FeedbackStatus(f.FeedbackStatus.String),
		ResponseStatus:  entity.ResponseStatus(f.ResponseStatus.String),
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

// MakeResponse is shared with the response repository, which reads the same table.
func MakeResponse(r ResponseDB) entity.Response {
	return entity.Response{
		ID:             r.ID.String,
		Subject:        r.Subject.String,
		FeedbackID:     r.FeedbackID.String,
		OrganizationID: r.OrganizationID.String,
		Description:    r.Description.String,
		Photo:          r.Photo.String,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
