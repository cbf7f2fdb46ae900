package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"roombook/infras/otel"
	"roombook/infras/postgres"
	"roombook/internal/domains/room/model"
	gDto "roombook/shared/dto"
	gRepo "roombook/shared/repository"
)

// Room is read only, rooms are reference data managed by migrations.
type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

// New returns the generic repository directly, rooms need no queries of
// their own.
func New(db *postgres.Connection, ot otel.Otel) Room {
	repo := gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, ot)

	return &repo
}
