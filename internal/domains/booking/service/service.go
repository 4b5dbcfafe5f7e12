package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"smartoffice/config"
	"smartoffice/infras/otel"
	"smartoffice/internal/domains/booking/availability"
	"smartoffice/internal/domains/booking/model"
	"smartoffice/internal/domains/booking/model/dto"
	"smartoffice/internal/domains/booking/policy"
	"smartoffice/internal/domains/booking/repository"
	"smartoffice/internal/domains/booking/timeslot"
	"smartoffice/shared"
	"smartoffice/shared/cache"
	"smartoffice/shared/constant"
	"smartoffice/shared/failure"
	"smartoffice/shared/timezone"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheListBooking = "booking:list"
	cacheKeyAllDays  = "all"

	msgNotFound = "Booking not found."
)

type Booking interface {
	List(ctx context.Context, date string) (dto.ListBookingsResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Delete(ctx context.Context, req dto.DeleteBookingRequest) (dto.DeleteBookingResponse, error)
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityOverviewResponse, error)
	Slots(ctx context.Context) dto.SlotsResponse
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	clock timezone.Clock
	rules policy.Rules

	// mu serialises mutations in this process. Listing refills hold it shared so a
	// refill can never store a set that a finished mutation has already invalidated.
	mu sync.RWMutex
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, clock timezone.Clock) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		clock: clock,
		rules: policy.RulesFromConfig(cfg),
	}
}

func (s *serviceImpl) List(ctx context.Context, date string) (res dto.ListBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if date != constant.Empty {
		if _, err = timezone.ParseDay(date); err != nil {
			return res, failure.InvalidDateParam
		}
	}

	bookings, err := s.listBookings(ctx, date)
	if err != nil {
		return res, err
	}

	res.FromModels(bookings)

	return res, nil
}

// listBookings serves the listing from cache when possible.
func (s *serviceImpl) listBookings(ctx context.Context, date string) ([]model.Booking, error) {
	cacheKey := shared.BuildCacheKey(cacheListBooking, cmp.Or(date, cacheKeyAllDays))

	var bookings []model.Booking

	if err := s.cache.Get(ctx, cacheKey, &bookings); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return bookings, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings, err := s.repo.GetAll(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, bookings, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save bookings to cache")
	}

	return bookings, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	candidate, err := req.ToModel()
	if err != nil {
		return res, err
	}

	scope.SetAttributes(map[string]any{
		"booking.location_id": candidate.LocationID,
		"booking.date":        candidate.Date,
		"booking.start_min":   candidate.StartMin,
		"booking.end_min":     candidate.EndMin,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.repo.Transact(ctx, func(ctx context.Context, tx repository.Tx) error {
		existing, err := tx.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load bookings: %w", err)
		}

		if err := policy.Admit(candidate, existing, s.rules); err != nil {
			return err
		}

		candidate.ID = uuid.NewString()
		candidate.CreatedAt = s.clock.Now()

		return tx.Insert(ctx, candidate) //nolint:wrapcheck
	})
	if err != nil {
		return res, s.mapError(err, "failed to create booking")
	}

	s.invalidate(ctx)

	log.Info().
		Str("id", candidate.ID).
		Str("locationId", candidate.LocationID).
		Str("date", candidate.Date).
		Str("username", candidate.Username).
		Msg("booking created")

	res.Booking.FromModel(candidate)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteBookingRequest) (res dto.DeleteBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	requester, err := req.Principal()
	if err != nil {
		return res, err
	}

	scope.SetAttribute("booking.id", req.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.repo.Transact(ctx, func(ctx context.Context, tx repository.Tx) error {
		booking, err := tx.Get(ctx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound(msgNotFound)
		}

		if err := policy.Authorize(requester, booking); err != nil {
			return err
		}

		deleted, err := tx.Delete(ctx, req.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !deleted {
			return failure.NotFound(msgNotFound)
		}

		return nil
	})
	if err != nil {
		return res, s.mapError(err, "failed to delete booking")
	}

	s.invalidate(ctx)

	log.Info().Str("id", req.ID).Str("username", requester.Username).Msg("booking deleted")

	res.OK = true

	return res, nil
}

func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityOverviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.clock.Now()

	date := req.Date
	if date == constant.Empty {
		date = timezone.DayOf(now)
	} else if _, err = timezone.ParseDay(date); err != nil {
		return res, failure.InvalidDateParam
	}

	at := timezone.MinuteOfDay(now)
	if req.At != constant.Empty {
		if at, err = timeslot.ParseClock(req.At); err != nil {
			return res, failure.InvalidClockParam
		}
	}

	bookings, err := s.listBookings(ctx, date)
	if err != nil {
		return res, err
	}

	statuses := availability.ComputeAll(req.LocationIDs, at, bookings)

	// Explicit ids restrict the answer to those locations, in request order.
	ids := slices.Compact(slices.Clone(req.LocationIDs))
	if len(ids) == 0 {
		for id := range statuses {
			ids = append(ids, id)
		}

		slices.Sort(ids)
	}

	res.Date = date
	res.At = timeslot.FormatClock(at)
	res.Locations = make([]dto.AvailabilityResponse, len(ids))

	for i, id := range ids {
		res.Locations[i].FromStatus(statuses[id], date, at)
	}

	return res, nil
}

func (s *serviceImpl) Slots(ctx context.Context) dto.SlotsResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()

	step := timeslot.DefaultStep
	if s.cfg.Booking.SlotMinutes > 0 {
		step = s.cfg.Booking.SlotMinutes
	}

	res := dto.SlotsResponse{
		DayStart: s.rules.Day.Start,
		DayEnd:   s.rules.Day.End,
		Step:     step,
		Slots:    []string{},
	}

	for start := range timeslot.Starts(s.rules.Day.Start, s.rules.Day.End, step) {
		res.Slots = append(res.Slots, timeslot.FormatClock(start))
	}

	return res
}

// invalidate runs before a mutation returns so the next poll reads the new state.
func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheListBooking)
}

// mapError turns policy rejections into failures; anything else is an internal error.
func (s *serviceImpl) mapError(err error, msg string) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return fail
	}

	var rejection *policy.Rejection
	if errors.As(err, &rejection) {
		log.Warn().Str("reason", string(rejection.Reason)).Msg(rejection.Message)

		switch {
		case errors.Is(rejection, policy.ErrInvalid):
			return failure.BadRequestFromString(rejection.Message)
		case errors.Is(rejection, policy.ErrQuotaExceeded), errors.Is(rejection, policy.ErrConflict):
			return failure.Conflict(rejection.Message)
		case errors.Is(rejection, policy.ErrForbidden):
			return failure.Forbidden(rejection.Message)
		}
	}

	log.Error().Err(err).Msg(msg)

	return fmt.Errorf("%s: %w", msg, err)
}
