package statisticRepository

import (
	"CitizenVoice/internal/entity"
	contextPkg "CitizenVoice/pkg/context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type createdDB struct {
	CreatedAt time.Time `db:"created_at"`
}

type feedbackStatusDB struct {
	CreatedAt      time.Time `db:"created_at"`
	FeedbackStatus string    `db:"feedback_status"`
	ResponseStatus string    `db:"response_status"`
}

func (r *statisticRepository) UsersCreated(ctx context.Context, role entity.Role, from, to time.Time) ([]time.Time, error) {
	return r.timestamps(ctx, "UsersCreated", queryUsersCreatedByRole, map[string]interface{}{
		"role": string(role),
		"from": from,
		"to":   to,
	})
}

func (r *statisticRepository) FeedbacksCreated(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return r.timestamps(ctx, "FeedbacksCreated", queryFeedbacksCreated, map[string]interface{}{
		"from": from,
		"to":   to,
	})
}

func (r *statisticRepository) FeedbacksByUser(ctx context.Context, userID string, from, to time.Time) ([]FeedbackStatus, error) {
	return r.statuses(ctx, "FeedbacksByUser", queryFeedbackStatusesByUser, map[string]interface{}{
		"user_id": userID,
		"from":    from,
		"to":      to,
	})
}

func (r *statisticRepository) FeedbacksByOrganization(ctx context.Context, organizationID string, from, to time.Time) ([]FeedbackStatus, error) {
	return r.statuses(ctx, "FeedbacksByOrganization", queryFeedbackStatusesByOrganization, map[string]interface{}{
		"organization_ids": pq.StringArray{organizationID},
		"from":             from,
		"to":               to,
	})
}

func (r *statisticRepository) timestamps(ctx context.Context, op string, rawQuery string, argsKV map[string]interface{}) ([]time.Time, error) {
	var rows []createdDB
	if err := r.selectNamed(ctx, op, rawQuery, argsKV, &rows); err != nil {
		return nil, err
	}

	out := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.CreatedAt)
	}
	return out, nil
}

func (r *statisticRepository) statuses(ctx context.Context, op string, rawQuery string, argsKV map[string]interface{}) ([]FeedbackStatus, error) {
	var rows []feedbackStatusDB
	if err := r.selectNamed(ctx, op, rawQuery, argsKV, &rows); err != nil {
		return nil, err
	}

	out := make([]FeedbackStatus, 0, len(rows))
	for _, row := range rows {
		out = append(out, FeedbackStatus{
			CreatedAt:      row.CreatedAt,
			FeedbackStatus: entity.FeedbackStatus(row.FeedbackStatus),
			ResponseStatus: entity.ResponseStatus(row.ResponseStatus),
		})
	}
	return out, nil
}

func (r *statisticRepository) selectNamed(ctx context.Context, op string, rawQuery string, argsKV map[string]interface{}, dest interface{}) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(rawQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Errorf("%s named query preparation err", op)
		return err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, dest, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Errorf("%s execution err", op)
		return err
	}

	return nil
}
