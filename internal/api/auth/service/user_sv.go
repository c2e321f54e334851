package authService

import (
	"CitizenVoice/internal/api/auth"
	"CitizenVoice/internal/entity"
	contextPkg "CitizenVoice/pkg/context"
	"CitizenVoice/pkg/s3"
	"CitizenVoice/pkg/utils"
	"errors"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *userDomainImpl) CreateUser(c context.Context, req auth.CreateUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	if !entity.IsValidRole(req.Role) {
		return entity.User{}, auth.ErrInvalidRole
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}
	defer repo.Rollback()

	user, err := NewUser(req.RegisterRequest, entity.Role(req.Role), s.bcryptUtils, s.utils)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build user")
		return entity.User{}, auth.ErrCreateUser
	}

	if err := PersistUser(c, repo.Users, s.utils, user); err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			return entity.User{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return entity.User{}, auth.ErrCreateUser
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.User{}, auth.ErrCreateUser
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
		"role":       req.Role,
	}).Info("User created")

	return user, nil
}

func (s *userDomainImpl) GetUsers(c context.Context) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Users.GetAll(c)
}

func (s *userDomainImpl) GetUserByID(c context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}

	return repo.Users.GetByID(c, id)
}

func (s *userDomainImpl) UpdateUser(c context.Context, id string, req auth.UpdateUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	if req.Role != "" && !entity.IsValidRole(req.Role) {
		return entity.User{}, auth.ErrInvalidRole
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}
	defer repo.Rollback()

	current, err := repo.Users.GetByID(c, id)
	if err != nil {
		return entity.User{}, err
	}

	updated := GetUserDifferenceData(current, req)

	if err := repo.Users.UpdateUser(c, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user")
		return entity.User{}, err
	}

	if req.Role != "" {
		if err := repo.Users.UpdateRole(c, id, entity.Role(req.Role)); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to update user role")
			return entity.User{}, err
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.User{}, err
	}

	return updated, nil
}

func (s *userDomainImpl) DeleteUser(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Users.DeleteRoles(c, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete user roles")
		return err
	}

	if err := repo.Users.DeleteUser(c, id); err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to delete user")
		}
		return err
	}

	return repo.Commit()
}

func (s *userDomainImpl) UpdatePhoto(c context.Context, userID string, photo *multipart.FileHeader) (auth.PhotoResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if err := s.utils.ValidateImageFile(photo); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid photo")
		if errors.Is(err, utils.ErrFileTooLarge) {
			return auth.PhotoResponse{}, auth.ErrFileTooLarge
		}
		return auth.PhotoResponse{}, auth.ErrInvalidFileType
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.PhotoResponse{}, err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		return auth.PhotoResponse{}, err
	}

	url, err := s.s3Client.UploadFile(s3.FolderUser, photo)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload photo")
		return auth.PhotoResponse{}, auth.ErrFailedToUploadFile
	}

	if err := repo.Users.UpdatePhoto(c, userID, url); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save photo url")
		return auth.PhotoResponse{}, err
	}

	if user.Photo != "" {
		if err := s.s3Client.DeleteFile(user.Photo); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete previous photo")
		}
	}

	return auth.PhotoResponse{ID: userID, Photo: url}, nil
}
