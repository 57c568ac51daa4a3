package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"carserv/config"
	"carserv/infras/otel"
	"carserv/infras/postgres"
	bookingModel "carserv/internal/domains/booking/model"
	bookingDto "carserv/internal/domains/booking/model/dto"
	bookingRepo "carserv/internal/domains/booking/repository"
	"carserv/internal/domains/user/model"
	"carserv/internal/domains/user/model/dto"
	"carserv/internal/domains/user/repository"
	"carserv/shared"
	"carserv/shared/constant"
	gDto "carserv/shared/dto"
	"carserv/shared/failure"
)

type User interface {
	Register(ctx context.Context, req dto.RegisterUserRequest) (dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo        repository.User
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.User, bookingRepo bookingRepo.Booking, cfg *config.Config, otel otel.Otel) User {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

// Register persists the user exactly as given. There is no uniqueness
// pre-check: a duplicate email surfaces from storage and is propagated as a
// conflict.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := req.ToModel()

	if err = s.repo.Insert(ctx, user); err != nil {
		if postgres.IsUniqueViolation(err) {
			log.Warn().Str("email", req.Email).Msg("registration attempt with duplicate email")

			return res, failure.Conflict("email already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to register user")

		return res, fmt.Errorf("failed to register user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

// Login looks the user up by email and compares the stored password byte for
// byte against the supplied one. The full record including the user's
// bookings is returned on success.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.UserResponse, err error) {
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

	user, err := s.repo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	if user.Password != req.Password {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid password") //nolint:wrapcheck
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(user.ID, bookingModel.FieldUserID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user bookings")

		return res, fmt.Errorf("failed to get user bookings: %w", err)
	}

	bookingResponses := make([]bookingDto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i].FromModel(booking)
	}

	res.FromModel(user)
	res.WithBookings(bookingResponses)

	return res, nil
}
