package responseService

import (
	responses "CitizenVoice/internal/api/response"
	"CitizenVoice/internal/entity"
	contextPkg "CitizenVoice/pkg/context"
	"CitizenVoice/pkg/s3"
	"CitizenVoice/pkg/utils"
	"errors"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *responseService) CreateResponse(c context.Context, actor entity.UserLoginData, req responses.CreateResponseRequest, photo *multipart.FileHeader) (responses.ResponseResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return responses.ResponseResponse{}, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := repo.Rollback(); rollbackErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      rollbackErr.Error(),
				}).Error("Failed to rollback transaction")
			}
		}
	}()

	org, err := repo.Organizations.GetByUserID(c, actor.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    actor.ID,
			"error":      err.Error(),
		}).Warn("Organization not found for the user")
		return responses.ResponseResponse{}, err
	}

	fb, err := repo.Feedbacks.GetByID(c, req.FeedbackID)
	if err != nil {
		return responses.ResponseResponse{}, err
	}

	if !fb.IsRoutedTo(org.ID) {
		err = responses.ErrNotRoutedToOrg
		return responses.ResponseResponse{}, err
	}

	if fb.ResponseStatus == entity.ResponseClosed {
		err = responses.ErrFeedbackClosed
		return responses.ResponseResponse{}, err
	}

	photoURL, err := s.uploadPhoto(c, photo)
	if err != nil {
		return responses.ResponseResponse{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		s.discardPhoto(c, photoURL)
		return responses.ResponseResponse{}, err
	}

	now := time.Now()
	res := entity.Response{
		ID:             id,
		Subject:        req.Subject,
		FeedbackID:     fb.ID,
		OrganizationID: org.ID,
		Description:    req.Description,
		Photo:          photoURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = repo.Responses.CreateResponse(c, res); err != nil {
		s.discardPhoto(c, photoURL)
		return responses.ResponseResponse{}, responses.ErrCreateResponse
	}

	if err = repo.Feedbacks.UpdateStatus(c, fb.ID, entity.FeedbackResolved, entity.ResponseAnswered); err != nil {
		s.discardPhoto(c, photoURL)
		return responses.ResponseResponse{}, err
	}

	if err = repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		s.discardPhoto(c, photoURL)
		return responses.ResponseResponse{}, responses.ErrCreateResponse
	}

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"response_id":     res.ID,
		"feedback_id":     fb.ID,
		"organization_id": org.ID,
	}).Info("Response created")

	return MakeResponseResponse(res), nil
}

func (s *responseService) GetResponses(c context.Context) ([]responses.ResponseResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	list, err := repo.Responses.GetAll(c)
	if err != nil {
		return nil, err
	}

	out := make([]responses.ResponseResponse, 0, len(list))
	for _, res := range list {
		out = append(out, MakeResponseResponse(res))
	}

	return out, nil
}

func (s *responseService) GetResponseByID(c context.Context, id string) (responses.ResponseResponse, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return responses.ResponseResponse{}, err
	}

	res, err := repo.Responses.GetByID(c, id)
	if err != nil {
		return responses.ResponseResponse{}, err
	}

	if res.Photo != "" {
		if signed, err := s.s3Client.PresignUrl(res.Photo); err == nil {
			res.Photo = signed
		}
	}

	return MakeResponseResponse(res), nil
}

// DeleteResponse is allowed for admins and for the organization that wrote it.
func (s *responseService) DeleteResponse(c context.Context, actor entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	res, err := repo.Responses.GetByID(c, id)
	if err != nil {
		return err
	}

	if !actor.HasRole(entity.RoleAdmin) {
		org, err := repo.Organizations.GetByUserID(c, actor.ID)
		if err != nil || org.ID != res.OrganizationID {
			return responses.ErrNotResponseOwner
		}
	}

	if err := repo.Responses.DeleteResponse(c, id); err != nil {
		if errors.Is(err, responses.ErrResponseNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete response")
		return responses.ErrDeleteResponse
	}

	s.discardPhoto(c, res.Photo)

	return nil
}

func (s *responseService) uploadPhoto(c context.Context, photo *multipart.FileHeader) (string, error) {
	if photo == nil {
		return "", nil
	}

	if err := s.utils.ValidateImageFile(photo); err != nil {
		if errors.Is(err, utils.ErrFileTooLarge) {
			return "", responses.ErrFileTooLarge
		}
		return "", responses.ErrInvalidFileType
	}

	url, err := s.s3Client.UploadFile(s3.FolderResponse, photo)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"file":       photo.Filename,
			"error":      err.Error(),
		}).Error("Failed to upload response photo")
		return "", responses.ErrFailedToUpload
	}

	return url, nil
}

func (s *responseService) discardPhoto(c context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.s3Client.DeleteFile(url); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"url":        url,
			"error":      err.Error(),
		}).Warn("Failed to delete response photo")
	}
}
