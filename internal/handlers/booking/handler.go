package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"carserv/infras/otel"
	"carserv/internal/domains/booking/model/dto"
	"carserv/internal/domains/booking/service"
	"carserv/shared/constant"
	"carserv/shared/validator"
	"carserv/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/user/{id}", handler.GetUserBookings)
		routerGroup.Get("/booking/{id}/status", handler.GetBookingStatus)
	})
}

// CreateBooking handles the creation of a new service booking.
// @Summary Create a new booking
// @Description Create a service booking for a user. The status always starts as PENDING.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Created booking"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetUserBookings lists every booking owned by a user.
// @Summary List a user's bookings
// @Description Retrieve all bookings belonging to the given user id.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.GetBookingsResponse "User bookings"
// @Failure 500 {object} response.Error
// @Router /api/bookings/user/{id} [get]
func (handler *Handler) GetUserBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserBookings")
	defer scope.End()

	userID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetUserBookings(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user bookings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User bookings retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingStatus returns the current status of a booking.
// @Summary Get a booking's status
// @Description Retrieve the status string of a single booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingStatusResponse "Booking status"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/booking/{id}/status [get]
func (handler *Handler) GetBookingStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetStatus(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking status retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}
