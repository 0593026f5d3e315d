package tour

import (
	"net/http"
	"roam/infras/otel"
	identityModel "roam/internal/domains/identity/model"
	"roam/internal/domains/tour/model"
	"roam/internal/domains/tour/model/dto"
	"roam/internal/domains/tour/service"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	"roam/shared/validator"
	"roam/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Tour
	otel    otel.Otel
}

func New(service service.Tour, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tours", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTours)
		routerGroup.Get("/{id}", handler.GetTourByID)
		routerGroup.Post("/", handler.CreateTour)
		routerGroup.Patch("/{id}", handler.UpdateTour)
		routerGroup.Delete("/{id}", handler.DeleteTour)
	})
}

func identityFrom(r *http.Request) *identityModel.Identity {
	identity, _ := r.Context().Value(constant.ContextKeyIdentity).(*identityModel.Identity)

	return identity
}

// GetTours retrieves all tour listings.
// @Summary Get all tours
// @Description Retrieve all tour listings with optional filtering and pagination. Public.
// @Tags Tour
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param host_id query string false "Filter by host ID"
// @Param status query string false "Filter by listing status"
// @Param location query string false "Filter by location (substring match)"
// @Success 200 {object} response.Data[dto.GetToursResponse] "List of tours"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours [get]
func (handler *Handler) GetTours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTours")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	hostID := r.URL.Query().Get(model.FieldHostID)
	status := r.URL.Query().Get(model.FieldStatus)
	location := r.URL.Query().Get(model.FieldLocation)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if hostID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldHostID,
			Operator: gDto.FilterOperatorEq,
			Value:    hostID,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	tours, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tours")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tours retrieved successfully")

	response.WithJSON(w, http.StatusOK, tours)
}

// GetTourByID retrieves a tour listing by its ID.
// @Summary Get a tour by ID
// @Description Retrieve a tour listing by its unique identifier. Public.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} response.Data[dto.TourResponse] "Tour details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours/{id} [get]
func (handler *Handler) GetTourByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTourByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	tour, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour retrieved successfully")

	response.WithJSON(w, http.StatusOK, tour)
}

// CreateTour creates a new tour listing.
// @Summary Create a new tour
// @Description Create a new tour listing owned by the authenticated host.
// @Tags Tour
// @Accept json
// @Produce json
// @Param request body dto.CreateTourRequest true "Create Tour Request"
// @Success 201 {object} response.Data[dto.TourResponse] "Tour created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours [post]
// @Security BearerAuth
func (handler *Handler) CreateTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTour")
	defer scope.End()

	req := dto.CreateTourRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	tour, err := handler.service.Create(ctx, req, identityFrom(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tour")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour created successfully")

	response.WithJSON(w, http.StatusCreated, tour)
}

// UpdateTour updates an existing tour listing.
// @Summary Update a tour by ID
// @Description Update a tour listing. Only the owning host or an admin may do this.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Param request body dto.UpdateTourRequest true "Update Tour Request"
// @Success 200 {object} response.Message "Tour updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTour")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTourRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id, identityFrom(r)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tour")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour updated successfully")

	response.WithMessage(w, http.StatusOK, "Tour updated successfully")
}

// DeleteTour deletes a tour listing.
// @Summary Delete a tour by ID
// @Description Remove a tour listing. Only the owning host or an admin may do this.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} response.Message "Tour deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTour")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id, identityFrom(r)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tour")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour deleted successfully")

	response.WithMessage(w, http.StatusOK, "Tour deleted successfully")
}
