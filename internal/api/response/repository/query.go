package responseRepository

const (
	queryCreateResponse = `
INSERT INTO responses (id, subject, feedback_id, organization_id, description, photo, created_at, updated_at)
VALUES (:id, :subject, :feedback_id, :organization_id, :description, :photo, :created_at, :updated_at)`

	querySelectResponse = `
SELECT id, subject, feedback_id, organization_id, description, photo, created_at, updated_at
FROM responses`

	queryGetResponseByID = querySelectResponse + `
WHERE id = :id`

	queryGetAllResponses = querySelectResponse + `
ORDER BY created_at DESC`

	queryDeleteResponse = `
DELETE FROM responses
WHERE id = :id`
)
