package model

import "roombook/shared/model"

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldFullName = "full_name"
)

type Employee struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	FullName string `db:"full_name"`
	model.Metadata
}
