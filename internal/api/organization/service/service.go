package organizationService

import (
	"CitizenVoice/internal/api/organization"
	organizationRepository "CitizenVoice/internal/api/organization/repository"
	"CitizenVoice/internal/entity"
	"CitizenVoice/pkg/bcrypt"
	"CitizenVoice/pkg/redis"
	"CitizenVoice/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	SnapshotKey = "routing:organizations"
	snapshotTTL = 10 * time.Minute
)

type IOrganizationService interface {
	CreateOrganization(c context.Context, req organization.CreateOrganizationRequest) (entity.Organization, error)
	UpdateOwnOrganization(c context.Context, userID string, req organization.UpdateOrganizationRequest) (entity.Organization, error)
	GetOrganizations(c context.Context) ([]entity.Organization, error)
	GetOrganizationByID(c context.Context, id string) (entity.Organization, error)
	GetOrganizationByUserID(c context.Context, userID string) (entity.Organization, error)
	DeleteOrganization(c context.Context, id string) error

	// RoutingSnapshot returns every organization as seen by the matcher,
	// served from redis when a fresh copy exists.
	RoutingSnapshot(c context.Context) ([]entity.Organization, error)
}

type organizationService struct {
	log         *logrus.Logger
	repo        organizationRepository.Repository
	redisServer redis.IRedis
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	repo organizationRepository.Repository,
	redisServer redis.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IOrganizationService {
	return &organizationService{
		log:         log,
		repo:        repo,
		redisServer: redisServer,
		bcryptUtils: bcryptUtils,
		utils:       utils,
	}
}
