package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"carserv/config"
	"carserv/infras/kafka"
	"carserv/infras/otel"
	"carserv/infras/postgres"
	"carserv/internal/domains/admin/model"
	"carserv/internal/domains/admin/model/dto"
	"carserv/internal/domains/admin/repository"
	bookingModel "carserv/internal/domains/booking/model"
	bookingDto "carserv/internal/domains/booking/model/dto"
	bookingRepo "carserv/internal/domains/booking/repository"
	"carserv/shared"
	"carserv/shared/cache"
	"carserv/shared/constant"
	gDto "carserv/shared/dto"
	"carserv/shared/failure"
	"carserv/shared/timezone"
)

const (
	cacheGetAllBookings  = "booking:gets"
	cacheGetStatus       = "booking:status"
	cacheGetUserBookings = "booking:user"
)

type Admin interface {
	Create(ctx context.Context, req dto.CreateAdminRequest) (dto.AdminResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AdminResponse, error)
	GetAllBookings(ctx context.Context) (bookingDto.GetBookingsResponse, error)
	UpdateBookingStatus(ctx context.Context, id, status string) (bookingDto.BookingResponse, error)
	DeleteBooking(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Admin
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	kafka       kafka.Client
	otel        otel.Otel
}

func New(repo repository.Admin, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Admin {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		kafka:       kafkaClient,
		otel:        otel,
	}
}

// Create persists a new admin account. A duplicate email surfaces from
// storage and is propagated as a conflict.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAdminRequest) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin := req.ToModel()

	if err = s.repo.Insert(ctx, admin); err != nil {
		if postgres.IsUniqueViolation(err) {
			log.Warn().Str("email", req.Email).Msg("admin creation attempt with duplicate email")

			return res, failure.Conflict("email already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create admin")

		return res, fmt.Errorf("failed to create admin: %w", err)
	}

	res.FromModel(admin)

	return res, nil
}

// Login mirrors the user login contract against the admins table.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    model.TableName,
			},
		},
	}

	admin, err := s.repo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("admin login attempt with non-existent email")

		return res, failure.NotFound("admin not found") //nolint:wrapcheck
	}

	if admin.Password != req.Password {
		log.Warn().Str("email", req.Email).Msg("admin login attempt with wrong password")

		return res, failure.Unauthorized("invalid password") //nolint:wrapcheck
	}

	res.FromModel(admin)

	return res, nil
}

// GetAllBookings returns every booking in the store, unfiltered, in
// storage-defined order.
func (s *serviceImpl) GetAllBookings(ctx context.Context) (res bookingDto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllBookings)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	models, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// UpdateBookingStatus overwrites the booking status with the supplied string
// verbatim. No enumerated set of valid states is enforced.
func (s *serviceImpl) UpdateBookingStatus(ctx context.Context, id, status string) (res bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName)

	booking, err := s.bookingRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Warn().Str("bookingID", id).Msg("booking not found")

		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		bookingModel.FieldStatus: status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.ContextSystem,
	}

	if err = s.bookingRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = status
	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, booking.ID, booking.UserID)

		s.publishEvent(c, constant.KafkaTopicBookingStatusUpdated, booking)
	}()

	return res, nil
}

// DeleteBooking removes the booking by id, failing with not found rather than
// silently succeeding when the id is absent.
func (s *serviceImpl) DeleteBooking(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName)

	booking, err := s.bookingRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Warn().Str("bookingID", id).Msg("booking not found")

		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err = s.bookingRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, booking.ID, booking.UserID)

		s.publishEvent(c, constant.KafkaTopicBookingDeleted, booking)
	}()

	return nil
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, bookingID, userID string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetStatus, bookingID)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking status from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetUserBookings, userID))
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBookings)
}

func (s *serviceImpl) publishEvent(ctx context.Context, topic string, booking bookingModel.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publishEvent")
	defer scope.End()

	event := bookingDto.BookingEvent{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		Status:     booking.Status,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}

	if err := s.kafka.SendMessages(ctx, topic, kafka.Message{Key: booking.ID, Value: event}); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish booking event")
	}
}
