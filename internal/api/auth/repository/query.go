package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, email, first_name, last_name, password, phone_number, photo, created_at, updated_at)
VALUES (:id, :email, :first_name, :last_name, :password, :phone_number, :photo, :created_at, :updated_at)`

	queryAssignRole = `
INSERT INTO user_roles (id, user_id, role)
VALUES (:id, :user_id, :role)`

	querySelectUser = `
SELECT id, email, first_name, last_name, password, phone_number, photo, created_at, updated_at
FROM users`

	queryGetByID = querySelectUser + `
WHERE id = :id`

	queryGetByEmail = querySelectUser + `
WHERE email = :email`

	queryGetAll = querySelectUser + `
ORDER BY created_at DESC`

	queryGetRolesByUserIDs = `
SELECT user_id, role
FROM user_roles
WHERE user_id = ANY(:user_ids)
ORDER BY role`

	queryUpdateUser = `
UPDATE users
SET first_name = :first_name,
    last_name = :last_name,
    email = :email,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateRole = `
UPDATE user_roles
SET role = :role
WHERE user_id = :user_id`

	queryUpdatePassword = `
UPDATE users
SET password = :password, updated_at = :updated_at
WHERE id = :id`

	queryUpdatePhoto = `
UPDATE users
SET photo = :photo, updated_at = :updated_at
WHERE id = :id`

	queryDeleteRoles = `
DELETE FROM user_roles
WHERE user_id = :user_id`

	queryDeleteUser = `
DELETE FROM users
WHERE id = :id`
)
