package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"roombook/infras/otel"
	"roombook/infras/postgres"
	"roombook/internal/domains/employee/model"
	gDto "roombook/shared/dto"
	gRepo "roombook/shared/repository"
)

type Employee interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Employee, error)
}

func New(db *postgres.Connection, ot otel.Otel) Employee {
	repo := gRepo.NewRepository[model.Employee](model.EntityName, model.TableName, model.FieldID, db, ot)

	return &repo
}
