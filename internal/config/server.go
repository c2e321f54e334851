package config

import (
	"CitizenVoice/database/postgres"
	authHandler "CitizenVoice/internal/api/auth/handler"
	authRepository "CitizenVoice/internal/api/auth/repository"
	authService "CitizenVoice/internal/api/auth/service"
	feedbackHandler "CitizenVoice/internal/api/feedback/handler"
	feedbackRepository "CitizenVoice/internal/api/feedback/repository"
	feedbackService "CitizenVoice/internal/api/feedback/service"
	organizationHandler "CitizenVoice/internal/api/organization/handler"
	organizationRepository "CitizenVoice/internal/api/organization/repository"
	organizationService "CitizenVoice/internal/api/organization/service"
	responseHandler "CitizenVoice/internal/api/response/handler"
	responseRepository "CitizenVoice/internal/api/response/repository"
	responseService "CitizenVoice/internal/api/response/service"
	statisticHandler "CitizenVoice/internal/api/statistic/handler"
	statisticRepository "CitizenVoice/internal/api/statistic/repository"
	statisticService "CitizenVoice/internal/api/statistic/service"
	"CitizenVoice/internal/middleware"
	"CitizenVoice/pkg/bcrypt"
	"CitizenVoice/pkg/redis"
	"CitizenVoice/pkg/s3"
	"CitizenVoice/pkg/smtp"
	"CitizenVoice/pkg/utils"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	redisServer redis.IRedis
	smtpMailer  smtp.ItfSmtp
	s3Client    s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.smtpMailer, s.redisServer, s.s3Client, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Organization Domain
	organizationRepo := organizationRepository.New(s.db, s.log)
	organizationServices := organizationService.New(s.log, organizationRepo, s.redisServer, s.bcryptUtils, s.utils)
	organizationHandlers := organizationHandler.New(s.log, s.validator, s.middleware, organizationServices)

	// Feedback Domain
	feedbackRepo := feedbackRepository.New(s.db, s.log)
	feedbackServices := feedbackService.New(s.log, feedbackRepo, organizationServices, authServices.User(), s.s3Client, s.smtpMailer, s.utils)
	feedbackHandlers := feedbackHandler.New(s.log, s.validator, s.middleware, feedbackServices)

	// Response Domain
	responseRepo := responseRepository.New(s.db, s.log)
	responseServices := responseService.New(s.log, responseRepo, s.s3Client, s.utils)
	responseHandlers := responseHandler.New(s.log, s.validator, s.middleware, responseServices)

	// Statistic Domain
	statisticRepo := statisticRepository.New(s.db, s.log)
	statisticServices := statisticService.New(s.log, statisticRepo)
	statisticHandlers := statisticHandler.New(s.log, s.validator, s.middleware, statisticServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, organizationHandlers, feedbackHandlers, responseHandlers, statisticHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(s.middleware.NewRateLimiter)

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(timeout time.Duration) error {
	if err := s.engine.ShutdownWithTimeout(timeout); err != nil {
		return err
	}
	return s.db.Close()
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
