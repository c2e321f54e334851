package feedbackRepository

const (
	queryCreateFeedback = `
INSERT INTO feedbacks (id, user_id, category, description, location, ticket, gallery_images, phone_number,
                       organization_ids, feedback_status, response_status, created_at, updated_at)
VALUES (:id, :user_id, :category, :description, :location, :ticket, :gallery_images, :phone_number,
        :organization_ids, :feedback_status, :response_status, :created_at, :updated_at)`

	querySelectFeedback = `
SELECT id, user_id, category, description, location, ticket, gallery_images, phone_number,
       organization_ids, feedback_status, response_status, created_at, updated_at
FROM feedbacks`

	queryGetFeedbackByID = querySelectFeedback + `
WHERE id = :id`

	queryGetAllFeedbacks = querySelectFeedback + `
ORDER BY created_at DESC`

	queryGetFeedbacksByUserID = querySelectFeedback + `
WHERE user_id = :user_id
ORDER BY created_at DESC`

	queryGetFeedbacksByOrganizationID = querySelectFeedback + `
WHERE organization_ids @> :organization_ids
ORDER BY created_at DESC`

	queryUpdateFeedback = `
UPDATE feedbacks
SET category = :category,
    description = :description,
    location = :location,
    phone_number = :phone_number,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateFeedbackStatus = `
UPDATE feedbacks
SET feedback_status = :feedback_status,
    response_status = :response_status,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteFeedback = `
DELETE FROM feedbacks
WHERE id = :id`

	queryGetResponsesByFeedbackIDs = `
SELECT id, subject, feedback_id, organization_id, description, photo, created_at, updated_at
FROM responses
WHERE feedback_id = ANY(:feedback_ids)
ORDER BY created_at ASC`
)
