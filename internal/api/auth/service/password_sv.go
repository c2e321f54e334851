package authService

import (
	"CitizenVoice/internal/api/auth"
	contextPkg "CitizenVoice/pkg/context"
	"CitizenVoice/pkg/redis"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const otpLifetime = time.Hour

func otpKey(email string) string {
	return "password-reset:" + email
}

func (s *passwordDomainImpl) ForgotPassword(c context.Context, req auth.ForgotPasswordRequest) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		return err
	}

	otp, err := s.utils.GenerateOTP()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate OTP")
		return err
	}

	if err := s.redisServer.SetOTP(c, otpKey(user.Email), otp, otpLifetime); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to set OTP in Redis")
		return err
	}

	if err := s.smtpMailer.SendPasswordResetOTP(user.Email, user.FullName(), otp); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send password reset email")
		return auth.ErrSendEmail
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Password reset OTP sent")

	return nil
}

func (s *passwordDomainImpl) ResetPassword(c context.Context, req auth.ResetPasswordRequest) error {
	requestID := contextPkg.GetRequestID(c)

	storedOTP, err := s.redisServer.GetOTP(c, otpKey(req.Email))
	if err != nil {
		if errors.Is(err, redis.ErrOTPNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("OTP not found or expired")
			return auth.ErrInvalidOTP
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get OTP from Redis")
		return err
	}

	if storedOTP != req.OTP {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("OTP mismatch")
		return auth.ErrInvalidOTP
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		return err
	}

	hashed, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	if err := repo.Users.UpdatePassword(c, user.ID, hashed); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update password")
		return err
	}

	if err := s.redisServer.DeleteOTP(c, otpKey(req.Email)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete used OTP")
	}

	return nil
}
