package responseService

import (
	responses "CitizenVoice/internal/api/response"
	responseRepository "CitizenVoice/internal/api/response/repository"
	"CitizenVoice/internal/entity"
	"CitizenVoice/pkg/s3"
	"CitizenVoice/pkg/utils"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IResponseService interface {
	CreateResponse(c context.Context, actor entity.UserLoginData, req responses.CreateResponseRequest, photo *multipart.FileHeader) (responses.ResponseResponse, error)
	GetResponses(c context.Context) ([]responses.ResponseResponse, error)
	GetResponseByID(c context.Context, id string) (responses.ResponseResponse, error)
	DeleteResponse(c context.Context, actor entity.UserLoginData, id string) error
}

type responseService struct {
	log      *logrus.Logger
	repo     responseRepository.Repository
	s3Client s3.ItfS3
	utils    utils.IUtils
}

func New(
	log *logrus.Logger,
	repo responseRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IResponseService {
	return &responseService{
		log:      log,
		repo:     repo,
		s3Client: s3Client,
		utils:    utils,
	}
}
