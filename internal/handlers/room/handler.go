package room

import (
	"fmt"
	"net/http"
	"time"

	"innkeep/infras/otel"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/service"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Get("/{id}/availability", handler.CheckRoomAvailability)
		routerGroup.Put("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// CreateRoom registers a new room. It responds with 201 and the created
// record; the Location header points at the new resource.
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	var req dto.CreateRoomRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithCreatedJSON(writer, fmt.Sprintf("/api/rooms/%d", res.ID), res)
}

// GetRooms lists rooms with their occupancy, optionally restricted to one
// floor, a room number substring, or a room type substring.
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup, err := listRoomFilters(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetAvailableRooms lists the rooms free for the whole requested range.
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	startDate, endDate, err := parseDateRange(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.GetAvailable(ctx, queryParams, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its identifier, with occupancy.
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// CheckRoomAvailability reports whether one room is free for the range.
func (handler *Handler) CheckRoomAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckRoomAvailability")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	startDate, endDate, err := parseDateRange(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	availability, err := handler.service.CheckAvailability(ctx, id, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check room availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room availability checked successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// UpdateRoom replaces every field of an existing room. A body carrying an id
// different from the path id is rejected.
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	var req dto.UpdateRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if req.ID != 0 && req.ID != id {
		err := failure.BadRequestFromString("id in body does not match id in path")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithNoContent(w)
}

// DeleteRoom removes a room. Rooms with guests assigned cannot be deleted.
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithNoContent(w)
}

func listRoomFilters(r *http.Request) (gDto.FilterGroup, error) {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if floorStr := r.URL.Query().Get(constant.RequestParamFloor); floorStr != "" {
		floor, err := shared.ConvertStringToInt(floorStr)
		if err != nil {
			return filterGroup, failure.InvalidFloorParam
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFloor,
			Operator: gDto.FilterOperatorEq,
			Value:    floor,
			Table:    model.TableName,
		})
	}

	if number := r.URL.Query().Get(constant.RequestParamNumber); number != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldNumber,
			Operator: gDto.FilterOperatorLike,
			Value:    number,
			Table:    model.TableName,
		})
	}

	if roomType := r.URL.Query().Get(constant.RequestParamType); roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorLike,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	return filterGroup, nil
}

func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	startStr := r.URL.Query().Get(constant.RequestParamStart)
	endStr := r.URL.Query().Get(constant.RequestParamEnd)

	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, failure.MissingDateRange
	}

	startDate, err := timezone.Parse(constant.DateFormat, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString(fmt.Sprintf("invalid start date %q, expected format %s", startStr, constant.DateFormat))
	}

	endDate, err := timezone.Parse(constant.DateFormat, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString(fmt.Sprintf("invalid end date %q, expected format %s", endStr, constant.DateFormat))
	}

	return startDate, endDate, nil
}
