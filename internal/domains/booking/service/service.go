package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"carserv/config"
	"carserv/infras/kafka"
	"carserv/infras/otel"
	"carserv/infras/postgres"
	"carserv/internal/domains/booking/model"
	"carserv/internal/domains/booking/model/dto"
	"carserv/internal/domains/booking/repository"
	userModel "carserv/internal/domains/user/model"
	userRepo "carserv/internal/domains/user/repository"
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

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string) (dto.GetBookingsResponse, error)
	GetStatus(ctx context.Context, id string) (dto.BookingStatusResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	userRepo userRepo.User
	cfg      *config.Config
	cache    cache.RedisCache
	kafka    kafka.Client
	otel     otel.Otel
}

func New(repo repository.Booking, userRepo userRepo.User, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		cfg:      cfg,
		cache:    cache,
		kafka:    kafkaClient,
		otel:     otel,
	}
}

// Create persists a new booking. The status is forced to PENDING regardless
// of anything the caller supplied, and the referenced user must exist.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userExists, err := s.userRepo.Exist(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !userExists {
		return res, failure.BadRequestFromString("user does not exist") //nolint:wrapcheck
	}

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid booking date format: %v", err)) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return res, failure.BadRequestFromString("user does not exist") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetUserBookings, booking.UserID))
		shared.InvalidateCaches(c, s.cache, cacheGetAllBookings)

		s.publishEvent(c, constant.KafkaTopicBookingCreated, booking)
	}()

	return res, nil
}

// GetUserBookings returns every booking owned by the user, an empty list when
// there are none.
func (s *serviceImpl) GetUserBookings(ctx context.Context, userID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUserBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetUserBookings, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user bookings")

		return res, fmt.Errorf("failed to get user bookings: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user bookings to cache")
		}
	}()

	return res, nil
}

// GetStatus returns the status string of a single booking.
func (s *serviceImpl) GetStatus(ctx context.Context, id string) (res dto.BookingStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStatus, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking status")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID, model.FieldStatus)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.ID = booking.ID
	res.Status = booking.Status

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking status to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, topic string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publishEvent")
	defer scope.End()

	event := dto.BookingEvent{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		Status:     booking.Status,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}

	if err := s.kafka.SendMessages(ctx, topic, kafka.Message{Key: booking.ID, Value: event}); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish booking event")
	}
}
