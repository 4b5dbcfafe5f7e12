package booking

import (
	"net/http"
	"smartoffice/infras/otel"
	"smartoffice/internal/domains/booking/model/dto"
	"smartoffice/internal/domains/booking/service"
	"smartoffice/shared/constant"
	"smartoffice/shared/validator"
	"smartoffice/transport/http/response"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryParamLocationIDs = "locationIds"

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
		routerGroup.Get("/", handler.ListBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})

	router.Get("/locations/{locationId}/availability", handler.GetLocationAvailability)
	router.Get("/availability", handler.GetAvailability)
	router.Get("/slots", handler.GetSlots)
}

// ListBookings returns the live bookings.
// @Summary List bookings
// @Description List every live booking, or only those of one day.
// @Tags Booking
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD"
// @Success 200 {object} dto.ListBookingsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [get]
func (handler *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListBookings")
	defer scope.End()

	res, err := handler.service.List(ctx, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateBooking books a location for a time range.
// @Summary Create a booking
// @Description Book a location for [startMin, endMin) on a day. Rejected when the requester is over quota or the range overlaps.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 200 {object} dto.CreateBookingResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("username", req.Username).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created by " + req.Username)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteBooking cancels a booking.
// @Summary Delete a booking
// @Description Owners may delete their bookings; admins may delete bookings of non-admins.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Param username query string true "Requester username"
// @Param userType query string true "Requester role" Enums(admin, employee, visitor)
// @Success 200 {object} dto.DeleteBookingResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	query := r.URL.Query()
	req := dto.DeleteBookingRequest{
		ID:       chi.URLParam(r, constant.RequestParamID),
		Username: query.Get(constant.RequestParamUsername),
		UserType: query.Get(constant.RequestParamUserType),
	}

	res, err := handler.service.Delete(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("id", req.ID).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetLocationAvailability reports whether one location is free at a moment.
// @Summary Location availability
// @Description Booked or available at the given time, with the next change of state.
// @Tags Availability
// @Produce json
// @Param locationId path string true "Location ID"
// @Param date query string false "Day as YYYY-MM-DD, defaults to today"
// @Param at query string false "Time as HH:MM, defaults to now"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/locations/{locationId}/availability [get]
func (handler *Handler) GetLocationAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocationAvailability")
	defer scope.End()

	query := r.URL.Query()

	res, err := handler.service.Availability(ctx, dto.AvailabilityRequest{
		LocationIDs: []string{chi.URLParam(r, constant.RequestParamLocationID)},
		Date:        query.Get(constant.RequestParamDate),
		At:          query.Get(constant.RequestParamAt),
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get location availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res.Locations[0])
}

// GetAvailability reports the status of several locations at a moment.
// @Summary Availability overview
// @Description Status of the requested locations, or of every location booked that day.
// @Tags Availability
// @Produce json
// @Param locationIds query string false "Comma separated location IDs"
// @Param date query string false "Day as YYYY-MM-DD, defaults to today"
// @Param at query string false "Time as HH:MM, defaults to now"
// @Success 200 {object} dto.AvailabilityOverviewResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	query := r.URL.Query()

	var locationIDs []string

	for id := range strings.SplitSeq(query.Get(queryParamLocationIDs), ",") {
		if id = strings.TrimSpace(id); id != constant.Empty {
			locationIDs = append(locationIDs, id)
		}
	}

	res, err := handler.service.Availability(ctx, dto.AvailabilityRequest{
		LocationIDs: locationIDs,
		Date:        query.Get(constant.RequestParamDate),
		At:          query.Get(constant.RequestParamAt),
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetSlots lists the selectable start and end times of the business day.
// @Summary Time slots
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.SlotsResponse
// @Router /api/slots [get]
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Slots(ctx))
}
