package authService

import (
	"CitizenVoice/internal/api/auth"
	"CitizenVoice/internal/entity"
	contextPkg "CitizenVoice/pkg/context"
	jwtPkg "CitizenVoice/pkg/jwt"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const tokenLifetime = time.Hour * 1

func (s *authDomainImpl) Register(c context.Context, req auth.RegisterRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}
	defer repo.Rollback()

	if _, err := repo.Users.GetByEmail(c, req.Email); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Email already registered")
		return auth.LoginResponse{}, auth.ErrEmailAlreadyExists
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return auth.LoginResponse{}, err
	}

	user, err := NewUser(req, entity.RoleCitizen, s.bcryptUtils, s.utils)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build user")
		return auth.LoginResponse{}, auth.ErrCreateUser
	}

	if err := PersistUser(c, repo.Users, s.utils, user); err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			return auth.LoginResponse{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.LoginResponse{}, auth.ErrCreateUser
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return auth.LoginResponse{}, auth.ErrCreateUser
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Citizen registered")

	return s.issueToken(requestID, user)
}

func (s *authDomainImpl) Login(c context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")
			return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
	}

	return s.issueToken(requestID, user)
}

func (s *authDomainImpl) Me(c context.Context, userID string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}

	return repo.Users.GetByID(c, userID)
}

func (s *authDomainImpl) issueToken(requestID string, user entity.User) (auth.LoginResponse, error) {
	token, expired, err := jwtPkg.Sign(user.LoginData(), tokenLifetime)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	return auth.LoginResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
		User:             MakeUserResponse(user),
	}, nil
}
