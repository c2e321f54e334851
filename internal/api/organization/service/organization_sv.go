package organizationService

import (
	"CitizenVoice/internal/api/auth"
	authService "CitizenVoice/internal/api/auth/service"
	"CitizenVoice/internal/api/organization"
	"CitizenVoice/internal/entity"
	contextPkg "CitizenVoice/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *organizationService) CreateOrganization(c context.Context, req organization.CreateOrganizationRequest) (entity.Organization, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Organization{}, err
	}
	defer repo.Rollback()

	if _, err := repo.Users.GetByEmail(c, req.Email); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Organization email already registered")
		return entity.Organization{}, auth.ErrEmailAlreadyExists
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return entity.Organization{}, err
	}

	user, err := authService.NewUser(auth.RegisterRequest{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}, entity.RoleOrganization, s.bcryptUtils, s.utils)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build organization user")
		return entity.Organization{}, organization.ErrCreateOrganization
	}

	if err := authService.PersistUser(c, repo.Users, s.utils, user); err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			return entity.Organization{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create organization user")
		return entity.Organization{}, organization.ErrCreateOrganization
	}

	orgID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Organization{}, err
	}

	org := entity.Organization{
		ID:        orgID,
		UserID:    user.ID,
		Name:      req.Name,
		Category:  req.Category,
		Address:   req.Address,
		Tags:      normalizeTags(req.Tags),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.CreatedAt,
	}

	if err := repo.Organizations.CreateOrganization(c, org); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create organization")
		return entity.Organization{}, organization.ErrCreateOrganization
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Organization{}, organization.ErrCreateOrganization
	}

	s.invalidateSnapshot(c)

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"organization_id": org.ID,
	}).Info("Organization created")

	return org, nil
}

func (s *organizationService) UpdateOwnOrganization(c context.Context, userID string, req organization.UpdateOrganizationRequest) (entity.Organization, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Organization{}, err
	}

	org, err := repo.Organizations.GetByUserID(c, userID)
	if err != nil {
		return entity.Organization{}, err
	}

	org = GetOrganizationDifferenceData(org, req)

	if err := repo.Organizations.UpdateOrganization(c, org); err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return entity.Organization{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update organization")
		return entity.Organization{}, organization.ErrUpdateOrganization
	}

	s.invalidateSnapshot(c)

	return org, nil
}

func (s *organizationService) GetOrganizations(c context.Context) ([]entity.Organization, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Organizations.GetAll(c)
}

func (s *organizationService) GetOrganizationByID(c context.Context, id string) (entity.Organization, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Organization{}, err
	}

	return repo.Organizations.GetByID(c, id)
}

func (s *organizationService) GetOrganizationByUserID(c context.Context, userID string) (entity.Organization, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Organization{}, err
	}

	return repo.Organizations.GetByUserID(c, userID)
}

func (s *organizationService) DeleteOrganization(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Organizations.DeleteOrganization(c, id); err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete organization")
		return organization.ErrDeleteOrganization
	}

	s.invalidateSnapshot(c)

	return nil
}
