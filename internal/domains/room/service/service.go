package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"innkeep/config"
	"innkeep/infras/otel"
	guestModel "innkeep/internal/domains/guest/model"
	guestRepository "innkeep/internal/domains/guest/repository"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheCountRoom = "room:count"

	// Guest responses embed the room number, so room updates flush the
	// guest caches as well.
	cacheGuestPrefix = "guest"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	GetAvailable(ctx context.Context, params gDto.QueryParams, startDate, endDate time.Time) (dto.GetRoomsResponse, error)
	CheckAvailability(ctx context.Context, id int64, startDate, endDate time.Time) (dto.AvailabilityResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo      repository.Room
	guestRepo guestRepository.Guest
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Room, guestRepo guestRepository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict(fmt.Sprintf("room number %s already exists", req.Number))
		}

		return res, err
	}

	created, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to read back created room")

		return res, fmt.Errorf("failed to get created room: %w", err)
	}

	res.FromModel(created, nil)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return res, nil
}

// GetAll lists rooms with their occupancy. Occupancy is derived against
// today's date, so the listing is recomputed on every call and never cached.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	guestsByRoom, err := s.getGuestsByRoom(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(models, guestsByRoom, total)

	return res, nil
}

// GetAvailable lists the rooms with no stay overlapping the range. Both
// range ends are inclusive.
func (s *serviceImpl) GetAvailable(ctx context.Context, params gDto.QueryParams, startDate, endDate time.Time) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	if endDate.Before(startDate) {
		return res, failure.BadRequestFromString("end date precedes start date")
	}

	models, err := s.repo.GetAvailable(ctx, params, startDate, endDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available rooms")

		return res, fmt.Errorf("failed to get available rooms: %w", err)
	}

	guestsByRoom, err := s.getGuestsByRoom(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(models, guestsByRoom, len(models))

	return res, nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, id int64, startDate, endDate time.Time) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if endDate.Before(startDate) {
		return res, failure.BadRequestFromString("end date precedes start date")
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return res, err
	}

	if !exist {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	available, err := s.repo.IsAvailable(ctx, id, startDate, endDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	res = dto.AvailabilityResponse{
		RoomID:      id,
		StartDate:   timezone.Format(startDate, constant.DateFormat),
		EndDate:     timezone.Format(endDate, constant.DateFormat),
		IsAvailable: available,
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	guests, err := s.getGuestsOfRoom(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room, guests)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return err
	}

	if !exist {
		log.Error().Int64("id", id).Msg("room not found")

		return failure.NotFound("room not found")
	}

	if err = s.repo.Update(ctx, req.ToFields(), filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict(fmt.Sprintf("room number %s already exists", req.Number))
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGuestPrefix)
	}()

	return nil
}

// Delete removes a room. A room that still has guests assigned to it cannot
// be removed; the records must be detached or deleted first.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return err
	}

	if !exist {
		log.Error().Int64("id", id).Msg("room not found")

		return failure.NotFound("room not found")
	}

	hasGuests, err := s.guestRepo.Exist(ctx, s.filterGuestsByRoom(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room guests")

		return err
	}

	if hasGuests {
		return failure.Conflict(fmt.Sprintf("cannot delete room %d because it has associated guests", id))
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) filterGuestsByRoom(id int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    guestModel.FieldRoomID,
				Table:    guestModel.TableName,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
			},
		},
	}
}

func (s *serviceImpl) getGuestsOfRoom(ctx context.Context, id int64) ([]guestModel.Guest, error) {
	guests, err := s.guestRepo.GetAll(ctx, gDto.QueryParams{}, s.filterGuestsByRoom(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room guests")

		return nil, fmt.Errorf("failed to get room guests: %w", err)
	}

	return guests, nil
}

func (s *serviceImpl) getGuestsByRoom(ctx context.Context) (map[int64][]guestModel.Guest, error) {
	guests, err := s.guestRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get room guests")

		return nil, fmt.Errorf("failed to get room guests: %w", err)
	}

	guestsByRoom := make(map[int64][]guestModel.Guest, len(guests))
	for _, guest := range guests {
		guestsByRoom[guest.RoomID] = append(guestsByRoom[guest.RoomID], guest)
	}

	return guestsByRoom, nil
}
