package model

import (
	"lodging/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldLastLogin = "last_login"
)

// User is a staff account; the property runs with a single admin.
type User struct {
	ID        string     `db:"id"`
	Username  string     `db:"username"`
	Password  string     `db:"password"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
