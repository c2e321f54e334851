package organizationService

import (
	"CitizenVoice/internal/entity"
	contextPkg "CitizenVoice/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// RoutingSnapshot never fails because of redis; a cache error falls through
// to the database.
func (s *organizationService) RoutingSnapshot(c context.Context) ([]entity.Organization, error) {
	requestID := contextPkg.GetRequestID(c)

	var cached []entity.Organization
	found, err := s.redisServer.GetJSON(c, SnapshotKey, &cached)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to read routing snapshot from cache")
	}
	if found && err == nil {
		return cached, nil
	}

	orgs, err := s.GetOrganizations(c)
	if err != nil {
		return nil, err
	}

	if err := s.redisServer.SetJSON(c, SnapshotKey, orgs, snapshotTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to cache routing snapshot")
	}

	s.log.WithFields(logrus.Fields{
		"request_id":    requestID,
		"organizations": len(orgs),
	}).Debug("Routing snapshot loaded from database")

	return orgs, nil
}

func (s *organizationService) invalidateSnapshot(c context.Context) {
	if err := s.redisServer.Delete(c, SnapshotKey); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Warn("Failed to invalidate routing snapshot")
	}
}
