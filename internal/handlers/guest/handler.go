package guest

import (
	"fmt"
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/guest/model"
	"innkeep/internal/domains/guest/model/dto"
	"innkeep/internal/domains/guest/service"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/current", handler.GetCurrentGuests)
		routerGroup.Get("/{id}", handler.GetGuestByID)
		routerGroup.Put("/{id}", handler.UpdateGuest)
		routerGroup.Delete("/{id}", handler.DeleteGuest)
	})
}

// CreateGuest registers a new guest with a stay interval and room assignment.
// It responds with 201 and the created record; the Location header points at
// the new resource.
func (handler *Handler) CreateGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	var req dto.CreateGuestRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest created successfully")

	response.WithCreatedJSON(writer, fmt.Sprintf("/api/guests/%d", res.ID), res)
}

// GetGuests lists guests, optionally restricted to one room.
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if roomIDStr := r.URL.Query().Get(constant.RequestParamRoomID); roomIDStr != "" {
		roomID, err := shared.ConvertStringToInt64(roomIDStr)
		if err != nil {
			scope.TraceError(err)

			response.WithError(w, failure.InvalidRoomParam)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	guests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guests retrieved successfully")

	response.WithJSON(w, http.StatusOK, guests)
}

// GetCurrentGuests lists the guests whose stay covers today.
func (handler *Handler) GetCurrentGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCurrentGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	guests, err := handler.service.GetCurrent(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current guests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Current guests retrieved successfully")

	response.WithJSON(w, http.StatusOK, guests)
}

// GetGuestByID retrieves a guest by its identifier.
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest retrieved successfully")

	response.WithJSON(w, http.StatusOK, guest)
}

// UpdateGuest replaces every field of an existing guest. A body carrying an
// id different from the path id is rejected.
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	var req dto.UpdateGuestRequest
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
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest updated successfully")

	response.WithNoContent(w)
}

// DeleteGuest removes a guest by its identifier.
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest deleted successfully")

	response.WithNoContent(w)
}
