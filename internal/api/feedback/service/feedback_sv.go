package feedbackService

import (
	"CitizenVoice/internal/api/feedback"
	feedbackRepository "CitizenVoice/internal/api/feedback/repository"
	"CitizenVoice/internal/api/organization"
	"CitizenVoice/internal/entity"
	contextPkg "CitizenVoice/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *feedbackService) GetFeedbacks(c context.Context) ([]feedback.FeedbackResponse, error) {
	repo, err := s.client(c)
	if err != nil {
		return nil, err
	}

	feedbacks, err := repo.Feedbacks.GetAll(c)
	if err != nil {
		return nil, err
	}

	return s.withResponses(c, feedbacks)
}

func (s *feedbackService) GetMyFeedbacks(c context.Context, userID string) ([]feedback.FeedbackResponse, error) {
	repo, err := s.client(c)
	if err != nil {
		return nil, err
	}

	feedbacks, err := repo.Feedbacks.GetByUserID(c, userID)
	if err != nil {
		return nil, err
	}

	return s.withResponses(c, feedbacks)
}

func (s *feedbackService) GetOrganizationFeedbacks(c context.Context, userID string) ([]feedback.FeedbackResponse, error) {
	org, err := s.organizations.GetOrganizationByUserID(c, userID)
	if err != nil {
		return nil, err
	}

	repo, err := s.client(c)
	if err != nil {
		return nil, err
	}

	feedbacks, err := repo.Feedbacks.GetByOrganizationID(c, org.ID)
	if err != nil {
		return nil, err
	}

	return s.withResponses(c, feedbacks)
}

func (s *feedbackService) GetFeedbackByID(c context.Context, actor entity.UserLoginData, id string) (feedback.FeedbackResponse, error) {
	repo, err := s.client(c)
	if err != nil {
		return feedback.FeedbackResponse{}, err
	}

	fb, err := repo.Feedbacks.GetByID(c, id)
	if err != nil {
		return feedback.FeedbackResponse{}, err
	}

	if err := s.authorizeRead(c, actor, fb); err != nil {
		return feedback.FeedbackResponse{}, err
	}

	fb.GalleryImages = s.presign(c, fb.GalleryImages)

	res, err := s.withResponses(c, []entity.Feedback{fb})
	if err != nil {
		return feedback.FeedbackResponse{}, err
	}

	return res[0], nil
}

func (s *feedbackService) UpdateFeedback(c context.Context, actor entity.UserLoginData, id string, req feedback.UpdateFeedbackRequest) (entity.Feedback, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.client(c)
	if err != nil {
		return entity.Feedback{}, err
	}

	fb, err := repo.Feedbacks.GetByID(c, id)
	if err != nil {
		return entity.Feedback{}, err
	}

	if err := authorizeWrite(actor, fb); err != nil {
		return entity.Feedback{}, err
	}

	fb = GetFeedbackDifferenceData(fb, req)

	if err := repo.Feedbacks.UpdateFeedback(c, fb); err != nil {
		if errors.Is(err, feedback.ErrFeedbackNotFound) {
			return entity.Feedback{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update feedback")
		return entity.Feedback{}, feedback.ErrUpdateFeedback
	}

	return fb, nil
}

func (s *feedbackService) CancelFeedback(c context.Context, actor entity.UserLoginData, id string) (entity.Feedback, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.client(c)
	if err != nil {
		return entity.Feedback{}, err
	}

	fb, err := repo.Feedbacks.GetByID(c, id)
	if err != nil {
		return entity.Feedback{}, err
	}

	if err := authorizeWrite(actor, fb); err != nil {
		return entity.Feedback{}, err
	}

	if err := repo.Feedbacks.UpdateStatus(c, id, entity.FeedbackUnresolved, entity.ResponseClosed); err != nil {
		if errors.Is(err, feedback.ErrFeedbackNotFound) {
			return entity.Feedback{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to cancel feedback")
		return entity.Feedback{}, feedback.ErrUpdateFeedback
	}

	fb.FeedbackStatus = entity.FeedbackUnresolved
	fb.ResponseStatus = entity.ResponseClosed
	fb.UpdatedAt = time.Now()

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"feedback_id": id,
	}).Info("Feedback canceled")

	return fb, nil
}

func (s *feedbackService) DeleteFeedback(c context.Context, actor entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.client(c)
	if err != nil {
		return err
	}

	fb, err := repo.Feedbacks.GetByID(c, id)
	if err != nil {
		return err
	}

	if err := authorizeWrite(actor, fb); err != nil {
		return err
	}

	if err := repo.Feedbacks.DeleteFeedback(c, id); err != nil {
		if errors.Is(err, feedback.ErrFeedbackNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete feedback")
		return feedback.ErrDeleteFeedback
	}

	s.discardImages(c, fb.GalleryImages)

	return nil
}

func (s *feedbackService) client(c context.Context) (feedbackRepository.Client, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return feedbackRepository.Client{}, err
	}
	return repo, nil
}

func (s *feedbackService) withResponses(c context.Context, feedbacks []entity.Feedback) ([]feedback.FeedbackResponse, error) {
	repo, err := s.client(c)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(feedbacks))
	for _, fb := range feedbacks {
		ids = append(ids, fb.ID)
	}

	responses, err := repo.Feedbacks.GetResponses(c, ids)
	if err != nil {
		return nil, err
	}

	out := make([]feedback.FeedbackResponse, 0, len(feedbacks))
	for _, fb := range feedbacks {
		out = append(out, MakeFeedbackResponse(fb, responses[fb.ID]))
	}

	return out, nil
}

// presign swaps stored object URLs for short-lived signed ones, keeping the
// stored URL whenever signing fails.
func (s *feedbackService) presign(c context.Context, urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, url := range urls {
		signed, err := s.s3Client.PresignUrl(url)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(c),
				"url":        url,
				"error":      err.Error(),
			}).Warn("Failed to presign gallery image")
			signed = url
		}
		out = append(out, signed)
	}
	return out
}

func (s *feedbackService) authorizeRead(c context.Context, actor entity.UserLoginData, fb entity.Feedback) error {
	if actor.HasRole(entity.RoleAdmin) || fb.UserID == actor.ID {
		return nil
	}

	if actor.HasRole(entity.RoleOrganization) {
		org, err := s.organizations.GetOrganizationByUserID(c, actor.ID)
		if err != nil && !errors.Is(err, organization.ErrOrganizationNotFound) {
			return err
		}
		if err == nil && fb.IsRoutedTo(org.ID) {
			return nil
		}
	}

	return feedback.ErrNotFeedbackOwner
}

func authorizeWrite(actor entity.UserLoginData, fb entity.Feedback) error {
	if actor.HasRole(entity.RoleAdmin) || fb.UserID == actor.ID {
		return nil
	}
	return feedback.ErrNotFeedbackOwner
}
