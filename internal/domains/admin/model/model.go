package model

import "carserv/shared/model"

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Admin is a back-office account. Admins are created once and never updated
// or deleted.
type Admin struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Password string `db:"password"`
	model.Metadata
}
