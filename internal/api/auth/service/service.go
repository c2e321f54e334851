package authService

import (
	"CitizenVoice/internal/api/auth"
	authRepository "CitizenVoice/internal/api/auth/repository"
	"CitizenVoice/internal/entity"
	"CitizenVoice/pkg/bcrypt"
	"CitizenVoice/pkg/redis"
	"CitizenVoice/pkg/s3"
	"CitizenVoice/pkg/smtp"
	"CitizenVoice/pkg/utils"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type AuthService interface {
	User() UserDomain
	Auth() AuthDomain
	Password() PasswordDomain
}

type UserDomain interface {
	CreateUser(c context.Context, req auth.CreateUserRequest) (entity.User, error)
	GetUsers(c context.Context) ([]entity.User, error)
	GetUserByID(c context.Context, id string) (entity.User, error)
	UpdateUser(c context.Context, id string, req auth.UpdateUserRequest) (entity.User, error)
	DeleteUser(c context.Context, id string) error
	UpdatePhoto(c context.Context, userID string, photo *multipart.FileHeader) (auth.PhotoResponse, error)
}

type AuthDomain interface {
	Register(c context.Context, req auth.RegisterRequest) (auth.LoginResponse, error)
	Login(c context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	Me(c context.Context, userID string) (entity.User, error)
}

type PasswordDomain interface {
	ForgotPassword(c context.Context, req auth.ForgotPasswordRequest) error
	ResetPassword(c context.Context, req auth.ResetPasswordRequest) error
}

type authService struct {
	userDomain     UserDomain
	authDomain     AuthDomain
	passwordDomain PasswordDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

func (a *authService) Password() PasswordDomain {
	return a.passwordDomain
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	s3Client    s3.ItfS3
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

type authDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

type passwordDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	smtpMailer  smtp.ItfSmtp
	redisServer redis.IRedis
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	smtpMailer smtp.ItfSmtp,
	redisServer redis.IRedis,
	s3Client s3.ItfS3,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		userDomain:     &userDomainImpl{log: log, repo: authRepo, s3Client: s3Client, bcryptUtils: bcryptUtils, utils: utils},
		authDomain:     &authDomainImpl{log: log, repo: authRepo, bcryptUtils: bcryptUtils, utils: utils},
		passwordDomain: &passwordDomainImpl{log: log, repo: authRepo, smtpMailer: smtpMailer, redisServer: redisServer, bcryptUtils: bcryptUtils, utils: utils},
	}
}
