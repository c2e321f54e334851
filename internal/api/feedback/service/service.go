package feedbackService

import (
	"CitizenVoice/internal/api/feedback"
	feedbackRepository "CitizenVoice/internal/api/feedback/repository"
	"CitizenVoice/internal/entity"
	"CitizenVoice/pkg/s3"
	"CitizenVoice/pkg/smtp"
	"CitizenVoice/pkg/utils"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IFeedbackService interface {
	CreateFeedback(c context.Context, citizen entity.UserLoginData, req feedback.CreateFeedbackRequest, gallery []*multipart.FileHeader) (entity.Feedback, error)
	Match(c context.Context, req feedback.MatchRequest) (feedback.MatchResponse, error)
	GetFeedbacks(c context.Context) ([]feedback.FeedbackResponse, error)
	GetMyFeedbacks(c context.Context, userID string) ([]feedback.FeedbackResponse, error)
	GetOrganizationFeedbacks(c context.Context, userID string) ([]feedback.FeedbackResponse, error)
	GetFeedbackByID(c context.Context, actor entity.UserLoginData, id string) (feedback.FeedbackResponse, error)
	UpdateFeedback(c context.Context, actor entity.UserLoginData, id string, req feedback.UpdateFeedbackRequest) (entity.Feedback, error)
	CancelFeedback(c context.Context, actor entity.UserLoginData, id string) (entity.Feedback, error)
	DeleteFeedback(c context.Context, actor entity.UserLoginData, id string) error
}

// OrganizationDirectory is the slice of the organization service that
// routing and access checks need.
type OrganizationDirectory interface {
	RoutingSnapshot(c context.Context) ([]entity.Organization, error)
	GetOrganizationByUserID(c context.Context, userID string) (entity.Organization, error)
}

type UserDirectory interface {
	GetUserByID(c context.Context, id string) (entity.User, error)
}

type feedbackService struct {
	log           *logrus.Logger
	repo          feedbackRepository.Repository
	organizations OrganizationDirectory
	users         UserDirectory
	s3Client      s3.ItfS3
	smtpMailer    smtp.ItfSmtp
	utils         utils.IUtils
}

func New(
	log *logrus.Logger,
	repo feedbackRepository.Repository,
	organizations OrganizationDirectory,
	users UserDirectory,
	s3Client s3.ItfS3,
	smtpMailer smtp.ItfSmtp,
	utils utils.IUtils,
) IFeedbackService {
	return &feedbackService{
		log:           log,
		repo:          repo,
		organizations: organizations,
		users:         users,
		s3Client:      s3Client,
		smtpMailer:    smtpMailer,
		utils:         utils,
	}
}
