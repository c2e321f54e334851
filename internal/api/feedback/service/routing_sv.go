package feedbackService

import (
	"CitizenVoice/database/postgres"
	"CitizenVoice/internal/api/feedback"
	"CitizenVoice/internal/entity"
	contextPkg "CitizenVoice/pkg/context"
	"CitizenVoice/pkg/matching"
	"CitizenVoice/pkg/s3"
	"CitizenVoice/pkg/utils"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const ticketAttempts = 3

// route ranks the current organization snapshot against a feedback.
func (s *feedbackService) route(c context.Context, category string, description string, topN int) ([]string, []matching.Match, map[string]entity.Organization, error) {
	requestID := contextPkg.GetRequestID(c)

	orgs, err := s.organizations.RoutingSnapshot(c)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load organizations for routing")
		return nil, nil, nil, feedback.ErrRouting
	}

	byID := make(map[string]entity.Organization, len(orgs))
	candidates := make([]matching.Candidate, 0, len(orgs))
	for _, org := range orgs {
		byID[org.ID] = org
		candidates = append(candidates, org.MatchCandidate())
	}

	tags := matching.ExtractTags(description)
	matches := matching.Rank(candidates, category, tags, topN)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"tags":       tags,
		"candidates": len(candidates),
		"matched":    len(matches),
	}).Debug("Feedback routed")

	return tags, matches, byID, nil
}

func (s *feedbackService) Match(c context.Context, req feedback.MatchRequest) (feedback.MatchResponse, error) {
	tags, matches, byID, err := s.route(c, req.Category, req.Description, req.TopN)
	if err != nil {
		return feedback.MatchResponse{}, err
	}

	res := feedback.MatchResponse{
		Tags:    tags,
		Matches: make([]feedback.MatchResult, 0, len(matches)),
	}
	for _, m := range matches {
		org := byID[m.Candidate.ID]
		res.Matches = append(res.Matches, feedback.MatchResult{
			OrganizationID: org.ID,
			Name:           org.Name,
			Category:       org.Category,
			Score:          m.Score,
			Matches:        m.Reasons,
		})
	}

	return res, nil
}

func (s *feedbackService) CreateFeedback(c context.Context, citizen entity.UserLoginData, req feedback.CreateFeedbackRequest, gallery []*multipart.FileHeader) (entity.Feedback, error) {
	requestID := contextPkg.GetRequestID(c)

	if err := s.validateGallery(gallery); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid gallery")
		return entity.Feedback{}, err
	}

	_, matches, byID, err := s.route(c, req.Category, req.Description, matching.DefaultTopN)
	if err != nil {
		return entity.Feedback{}, err
	}

	images, err := s.uploadGallery(c, gallery)
	if err != nil {
		return entity.Feedback{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		s.discardImages(c, images)
		return entity.Feedback{}, err
	}

	now := time.Now()
	fb := entity.Feedback{
		ID:              id,
		UserID:          citizen.ID,
		Category:        req.Category,
		Description:     req.Description,
		Location:        req.Location,
		GalleryImages:   images,
		PhoneNumber:     req.PhoneNumber,
		OrganizationIDs: matching.IDs(matches),
		FeedbackStatus:  entity.FeedbackUnresolved,
		ResponseStatus:  entity.ResponsePending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.persistWithTicket(c, &fb); err != nil {
		s.discardImages(c, images)
		return entity.Feedback{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":    requestID,
		"feedback_id":   fb.ID,
		"ticket":        fb.Ticket,
		"organizations": fb.OrganizationIDs,
	}).Info("Feedback created")

	s.notifyOrganizations(c, fb, matches, byID)

	return fb, nil
}

// persistWithTicket retries with a fresh ticket when the generated one is taken.
func (s *feedbackService) persistWithTicket(c context.Context, fb *entity.Feedback) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	for attempt := 1; ; attempt++ {
		ticket, err := s.utils.GenerateTicket()
		if err != nil {
			return err
		}
		fb.Ticket = ticket

		err = repo.Feedbacks.CreateFeedback(c, *fb)
		if err == nil {
			return nil
		}

		if postgres.IsUniqueViolation(err) && attempt < ticketAttempts {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"ticket":     ticket,
			}).Warn("Ticket collision, regenerating")
			continue
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create feedback")
		return feedback.ErrCreateFeedback
	}
}

func (s *feedbackService) validateGallery(gallery []*multipart.FileHeader) error {
	if len(gallery) == 0 {
		return nil
	}

	err := s.utils.ValidateGallery(gallery)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrTooManyImages):
		return feedback.ErrTooManyImages
	case errors.Is(err, utils.ErrFileTooLarge):
		return feedback.ErrFileTooLarge
	default:
		return feedback.ErrInvalidFileType
	}
}

func (s *feedbackService) uploadGallery(c context.Context, gallery []*multipart.FileHeader) ([]string, error) {
	images := make([]string, 0, len(gallery))

	for _, file := range gallery {
		url, err := s.s3Client.UploadFile(s3.FolderFeedback, file)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(c),
				"file":       file.Filename,
				"error":      err.Error(),
			}).Error("Failed to upload gallery image")
			s.discardImages(c, images)
			return nil, feedback.ErrFailedToUpload
		}
		images = append(images, url)
	}

	return images, nil
}

func (s *feedbackService) discardImages(c context.Context, images []string) {
	for _, url := range images {
		if err := s.s3Client.DeleteFile(url); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(c),
				"url":        url,
				"error":      err.Error(),
			}).Warn("Failed to delete image")
		}
	}
}

// notifyOrganizations is best-effort; failures are logged and never surface.
func (s *feedbackService) notifyOrganizations(c context.Context, fb entity.Feedback, matches []matching.Match, byID map[string]entity.Organization) {
	requestID := contextPkg.GetRequestID(c)

	for _, m := range matches {
		org := byID[m.Candidate.ID]

		user, err := s.users.GetUserByID(c, org.UserID)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":      requestID,
				"organization_id": org.ID,
				"error":           err.Error(),
			}).Warn("Failed to resolve organization contact")
			continue
		}

		subject := fmt.Sprintf("New feedback %s routed to %s", fb.Ticket, org.Name)
		body := fmt.Sprintf(`Dear %s,

A new citizen feedback has been routed to your organization.

Ticket: %s
Category: %s
Location: %s
Match score: %.1f

%s

Please sign in to respond.
`, org.Name, fb.Ticket, fb.Category, fb.Location, m.Score, fb.Description)

		if err := s.smtpMailer.SendMail([]string{user.Email}, subject, body); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":      requestID,
				"organization_id": org.ID,
				"error":           err.Error(),
			}).Warn("Failed to notify organization")
		}
	}
}
