package model

import "roam/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID            = "id"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldRole          = "role"
	FieldAccountStatus = "account_status"
	FieldFullName      = "full_name"
	FieldPhone         = "phone"
	FieldLastLogin     = "last_login"
)

type User struct {
	ID            string  `db:"id"`
	Email         string  `db:"email"`
	Password      string  `db:"password"`
	Role          string  `db:"role"`
	AccountStatus string  `db:"account_status"`
	FullName      *string `db:"full_name"`
	Phone         *string `db:"phone"`
	LastLogin     *string `db:"last_login"`
	model.Metadata
}
