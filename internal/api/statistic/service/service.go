package statisticService

import (
	"CitizenVoice/internal/api/statistic"
	statisticRepository "CitizenVoice/internal/api/statistic/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IStatisticService interface {
	GetAdminStatistics(c context.Context, year int) (statistic.AdminStatistics, error)
	GetCitizenStatistics(c context.Context, userID string, year int) (statistic.CitizenStatistics, error)
	GetOrganizationStatistics(c context.Context, userID string, year int) (statistic.OrganizationStatistics, error)
}

type statisticService struct {
	log  *logrus.Logger
	repo statisticRepository.Repository
}

func New(log *logrus.Logger, repo statisticRepository.Repository) IStatisticService {
	return &statisticService{
		log:  log,
		repo: repo,
	}
}
