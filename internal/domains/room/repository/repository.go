package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/room/model"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/logger"
	gRepo "innkeep/shared/repository"
)

// overlapCondition matches guests whose stay overlaps the requested range.
// Both interval ends are inclusive, so two stays may share a boundary day.
const overlapCondition = "guests.check_in_date <= :end_date AND guests.check_out_date >= :start_date"

type Room interface {
	Insert(ctx context.Context, model model.Room) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetAvailable(ctx context.Context, params gDto.QueryParams, startDate, endDate time.Time) ([]model.Room, error)
	IsAvailable(ctx context.Context, id int64, startDate, endDate time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAvailable returns the rooms with no overlapping stay in the range.
func (repo *repositoryImpl) GetAvailable(ctx context.Context, params gDto.QueryParams, startDate, endDate time.Time) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAvailable", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	ordering := ""
	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	query := fmt.Sprintf(
		"SELECT rooms.id, rooms.number, rooms.floor, rooms.type, rooms.created_at, rooms.modified_at FROM rooms"+
			" WHERE NOT EXISTS (SELECT 1 FROM guests WHERE guests.room_id = rooms.id AND %s) %s",
		overlapCondition,
		ordering,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []model.Room

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	args := map[string]any{
		"start_date": startDate,
		"end_date":   endDate,
	}

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get available rooms: %w", err)
	}

	return models, nil
}

// IsAvailable reports whether the room has no overlapping stay in the range.
func (repo *repositoryImpl) IsAvailable(ctx context.Context, id int64, startDate, endDate time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.IsAvailable", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT NOT EXISTS (SELECT 1 FROM guests WHERE guests.room_id = :room_id AND %s)",
		overlapCondition,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	args := map[string]any{
		"room_id":    id,
		"start_date": startDate,
		"end_date":   endDate,
	}

	available := false

	err = prepare.GetContext(ctx, &available, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check room availability: %w", err)
	}

	return available, nil
}
