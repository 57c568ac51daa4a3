package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"carserv/infras/otel"
	"carserv/internal/domains/admin/model/dto"
	"carserv/internal/domains/admin/service"
	"carserv/shared/constant"
	"carserv/shared/validator"
	"carserv/transport/http/response"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/create", handler.CreateAdmin)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Get("/bookings", handler.GetAllBookings)
		routerGroup.Put("/booking/{id}", handler.UpdateBookingStatus)
		routerGroup.Delete("/booking/{id}", handler.DeleteBooking)
	})
}

// CreateAdmin handles the creation of a new admin account.
// @Summary Create a new admin
// @Description Create a new admin account with email and password.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminRequest true "Create Admin Request"
// @Success 201 {object} dto.AdminResponse "Created admin"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/create [post]
func (handler *Handler) CreateAdmin(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAdmin")
	defer scope.End()

	req := dto.CreateAdminRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create admin")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Admin created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// Login handles admin login.
// @Summary Log an admin in
// @Description Look the admin up by email and compare the password.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.AdminResponse "Logged-in admin"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login admin")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Admin logged in successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetAllBookings lists every booking across all users.
// @Summary List all bookings
// @Description Retrieve every booking in the store, unfiltered.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} bookingDto.GetBookingsResponse "All bookings"
// @Failure 500 {object} response.Error
// @Router /api/admin/bookings [get]
func (handler *Handler) GetAllBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllBookings")
	defer scope.End()

	res, err := handler.service.GetAllBookings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateBookingStatus overwrites a booking's status with the supplied string.
// @Summary Update a booking's status
// @Description Set the booking status to the given string, verbatim.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param status query string true "New status"
// @Success 200 {object} bookingDto.BookingResponse "Updated booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/booking/{id} [put]
func (handler *Handler) UpdateBookingStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	status := request.URL.Query().Get(constant.RequestParamStatus)

	res, err := handler.service.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking status updated successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteBooking removes a booking record.
// @Summary Delete a booking
// @Description Delete the booking with the given id.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/booking/{id} [delete]
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.DeleteBooking(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Booking Deleted Successfully")
}
