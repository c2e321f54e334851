package statisticRepository

const (
	queryUsersCreatedByRole = `
SELECT u.created_at
FROM users u
WHERE EXISTS (SELECT 1 FROM user_roles r WHERE r.user_id = u.id AND r.role = :role)
  AND u.created_at >= :from
  AND u.created_at < :to`

	queryFeedbacksCreated = `
SELECT created_at
FROM feedbacks
WHERE created_at >= :from
  AND created_at < :to`

	queryFeedbackStatusesByUser = `
SELECT created_at, feedback_status, response_status
FROM feedbacks
WHERE user_id = :user_id
  AND created_at >= :from
  AND created_at < :to`

	queryFeedbackStatusesByOrganization = `
SELECT created_at, feedback_status, response_status
FROM feedbacks
WHERE organization_ids @> :organization_ids
  AND created_at >= :from
  AND created_at < :to`
)
