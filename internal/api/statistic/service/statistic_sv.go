package statisticService

import (
	"CitizenVoice/internal/api/statistic"
	"CitizenVoice/internal/entity"
	contextPkg "CitizenVoice/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

func (s *statisticService) GetAdminStatistics(c context.Context, year int) (statistic.AdminStatistics, error) {
	requestID := contextPkg.GetRequestID(c)
	repo := s.repo.NewClient()
	from, to := YearRange(year)

	var organizations, citizens, feedbacks []time.Time

	g, gc := errgroup.WithContext(c)
	g.Go(func() error {
		var err error
		organizations, err = repo.Statistics.UsersCreated(gc, entity.RoleOrganization, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		citizens, err = repo.Statistics.UsersCreated(gc, entity.RoleCitizen, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		feedbacks, err = repo.Statistics.FeedbacksCreated(gc, from, to)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"year":       year,
			"error":      err.Error(),
		}).Error("Failed to load admin statistics")
		return statistic.AdminStatistics{}, statistic.ErrGetStatistics
	}

	res := statistic.AdminStatistics{
		Year:                     year,
		OrganizationCountByMonth: CountByMonth(year, organizations),
		CitizenCountByMonth:      CountByMonth(year, citizens),
		FeedbackCountByMonth:     CountByMonth(year, feedbacks),
	}
	res.TotalOrganizations = res.OrganizationCountByMonth.Total()
	res.TotalCitizens = res.CitizenCountByMonth.Total()
	res.TotalFeedbacks = res.FeedbackCountByMonth.Total()

	return res, nil
}

func (s *statisticService) GetCitizenStatistics(c context.Context, userID string, year int) (statistic.CitizenStatistics, error) {
	requestID := contextPkg.GetRequestID(c)
	repo := s.repo.NewClient()
	from, to := YearRange(year)

	rows, err := repo.Statistics.FeedbacksByUser(c, userID, from, to)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to load citizen statistics")
		return statistic.CitizenStatistics{}, statistic.ErrGetStatistics
	}

	res := statistic.CitizenStatistics{Year: year}
	for _, row := range rows {
		i, ok := monthIndex(year, row.CreatedAt)
		if !ok {
			continue
		}
		res.FeedbackCountByMonth[i]++
		if row.FeedbackStatus == entity.FeedbackResolved {
			res.ResolvedFeedbackCountByMonth[i]++
		} else {
			res.UnresolvedFeedbackCountByMonth[i]++
		}
	}
	res.TotalFeedbacks = res.FeedbackCountByMonth.Total()
	res.TotalResolvedFeedbacks = res.ResolvedFeedbackCountByMonth.Total()
	res.TotalUnresolvedFeedbacks = res.UnresolvedFeedbackCountByMonth.Total()

	return res, nil
}

// GetOrganizationStatistics counts feedback routed to the caller's
// organization. Closed feedback counts toward the total only.
func (s *statisticService) GetOrganizationStatistics(c context.Context, userID string, year int) (statistic.OrganizationStatistics, error) {
	requestID := contextPkg.GetRequestID(c)
	repo := s.repo.NewClient()
	from, to := YearRange(year)

	org, err := repo.Organizations.GetByUserID(c, userID)
	if err != nil {
		return statistic.OrganizationStatistics{}, err
	}

	rows, err := repo.Statistics.FeedbacksByOrganization(c, org.ID, from, to)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"organization_id": org.ID,
			"error":           err.Error(),
		}).Error("Failed to load organization statistics")
		return statistic.OrganizationStatistics{}, statistic.ErrGetStatistics
	}

	res := statistic.OrganizationStatistics{Year: year, OrganizationID: org.ID}
	for _, row := range rows {
		i, ok := monthIndex(year, row.CreatedAt)
		if !ok {
			continue
		}
		res.FeedbackCountByMonth[i]++
		switch row.ResponseStatus {
		case entity.ResponseAnswered:
			res.AnsweredFeedbackCountByMonth[i]++
		case entity.ResponsePending:
			res.PendingFeedbackCountByMonth[i]++
		}
	}
	res.TotalFeedbacks = res.FeedbackCountByMonth.Total()
	res.TotalAnsweredFeedbacks = res.AnsweredFeedbackCountByMonth.Total()
	res.TotalPendingFeedbacks = res.PendingFeedbackCountByMonth.Total()

	return res, nil
}
