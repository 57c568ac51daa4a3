package model

import "carserv/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPhone    = "phone"
)

// User is a customer of the servicing workshop. The password is stored as the
// caller supplied it, the login comparison is byte-exact.
type User struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Phone    string `db:"phone"`
	model.Metadata
}
