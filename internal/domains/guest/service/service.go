package service

import (
	"context"
	"errors"
	"fmt"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/internal/domains/guest/model"
	"innkeep/internal/domains/guest/model/dto"
	"innkeep/internal/domains/guest/repository"
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
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
	cacheCountGuest  = "guest:count"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	GetCurrent(ctx context.Context, params gDto.QueryParams) (dto.GetGuestsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Create registers a guest and returns the stored record, including the
// number of the room the guest is assigned to.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("invalid guest payload")

		return res, failure.BadRequest(err)
	}

	id, err := s.repo.Insert(ctx, guest)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return res, failure.BadRequestFromString(fmt.Sprintf("room %d does not exist", req.RoomID))
		}

		return res, err
	}

	created, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to read back created guest")

		return res, fmt.Errorf("failed to get created guest: %w", err)
	}

	res.FromModel(created)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuest, params, filter)

	// Models are cached rather than responses so derived fields, age in
	// particular, are recomputed against today on every read.
	var cached []model.Guest

	err = s.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		res.FromModels(cached, len(cached))

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, models, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}

// GetCurrent returns the guests whose stay covers today. The result depends
// on the current date, so it is recomputed on every call and never cached.
func (s *serviceImpl) GetCurrent(ctx context.Context, params gDto.QueryParams) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCurrent")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.Today()
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCheckInDate,
				Table:    model.TableName,
				Value:    today,
				Operator: gDto.FilterOperatorLessEq,
				ArgName:  "current_check_in",
			},
			gDto.Filter{
				Field:    model.FieldCheckOutDate,
				Table:    model.TableName,
				Value:    today,
				Operator: gDto.FilterOperatorGreaterEq,
				ArgName:  "current_check_out",
			},
		},
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get current guests")

		return res, fmt.Errorf("failed to get current guests: %w", err)
	}

	res.FromModels(models, len(models))

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGuest, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuest, fmt.Sprintf("%d", id))

	// The model is cached rather than the response so derived fields, age in
	// particular, are recomputed against today on every read.
	var cached model.Guest

	err = s.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		res.FromModel(cached)

		return res, nil
	}

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == 0 {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, guest, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}

// Update replaces every mutable field of the guest. Updating a guest that
// does not exist is a NotFound, never an upsert.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields, err := req.ToFields()
	if err != nil {
		log.Error().Err(err).Msg("invalid guest payload")

		return failure.BadRequest(err)
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check guest existence")

		return err
	}

	if !exist {
		log.Error().Int64("id", id).Msg("guest not found")

		return failure.NotFound("guest not found")
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.BadRequestFromString(fmt.Sprintf("room %d does not exist", req.RoomID))
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuest, fmt.Sprintf("%d", id))); err != nil {
			log.Error().Err(err).Msg("failed to delete guest cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check guest existence")

		return err
	}

	if !exist {
		log.Error().Int64("id", id).Msg("guest not found")

		return failure.NotFound("guest not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuest, fmt.Sprintf("%d", id))); err != nil {
			log.Error().Err(err).Msg("failed to delete guest cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
	}()

	return nil
}
