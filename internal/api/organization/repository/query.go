package organizationRepository

const (
	queryCreateOrganization = `
INSERT INTO organizations (id, user_id, name, category, address, tags, created_at, updated_at)
VALUES (:id, :user_id, :name, :category, :address, :tags, :created_at, :updated_at)`

	querySelectOrganization = `
SELECT id, user_id, name, category, address, tags, created_at, updated_at
FROM organizations`

	queryGetOrganizationByID = querySelectOrganization + `
WHERE id = :id`

	queryGetOrganizationByUserID = querySelectOrganization + `
WHERE user_id = :user_id`

	queryGetAllOrganizations = querySelectOrganization + `
ORDER BY created_at ASC, id ASC`

	queryUpdateOrganization = `
UPDATE organizations
SET name = :name,
    category = :category,
    address = :address,
    tags = :tags,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteOrganization = `
DELETE FROM organizations
WHERE id = :id`
)
