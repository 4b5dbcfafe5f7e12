package booking_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"smartoffice/infras/otel/mocks"
	"smartoffice/internal/domains/booking/model/dto"
	serviceMocks "smartoffice/internal/domains/booking/service/mocks"
	"smartoffice/internal/handlers/booking"
	"smartoffice/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*serviceMocks.MockBooking, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockBooking(ctrl)
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_ListBookings(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().List(gomock.Any(), "2024-05-01").Return(dto.ListBookingsResponse{
		Bookings: []dto.BookingResponse{{
			ID:           "b-1",
			LocationID:   "R1",
			LocationName: "Room R1",
			StartMin:     600,
			EndMin:       660,
			Date:         "2024-05-01",
			Username:     "alice",
			UserType:     "employee",
			CreatedAt:    "2024-04-30T08:00:00Z",
		}},
	}, nil)

	recorder := serve(router, http.MethodGet, "/api/bookings?date=2024-05-01", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"bookings":[{
		"id":"b-1","locationId":"R1","locationName":"Room R1","startMin":600,"endMin":660,
		"date":"2024-05-01","username":"alice","userType":"employee","createdAt":"2024-04-30T08:00:00Z"
	}]}`, recorder.Body.String())
}

func TestHandler_ListBookings_BadDate(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().List(gomock.Any(), "May 1").Return(dto.ListBookingsResponse{}, failure.InvalidDateParam)

	recorder := serve(router, http.MethodGet, "/api/bookings?date=May%201", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"date must be formatted as YYYY-MM-DD."}`, recorder.Body.String())
}

func TestHandler_CreateBooking(t *testing.T) {
	start, end := 600, 660

	tests := []struct {
		name      string
		body      string
		setupMock func(svc *serviceMocks.MockBooking)
		code      int
		response  string
	}{
		{
			name: "created",
			body: `{"locationId":"R1","locationName":"Room R1","startMin":600,"endMin":660,"date":"2024-05-01","username":"alice","userType":"employee"}`,
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), dto.CreateBookingRequest{
					LocationID:   "R1",
					LocationName: "Room R1",
					StartMin:     &start,
					EndMin:       &end,
					Date:         "2024-05-01",
					Username:     "alice",
					UserType:     "employee",
				}).Return(dto.CreateBookingResponse{Booking: dto.BookingResponse{ID: "b-1", LocationID: "R1"}}, nil)
			},
			code:     http.StatusOK,
			response: `{"booking":{"id":"b-1","locationId":"R1","locationName":"","startMin":0,"endMin":0,"date":"","username":"","userType":"","createdAt":""}}`,
		},
		{
			name:      "malformed body",
			body:      `{"locationId":`,
			setupMock: func(_ *serviceMocks.MockBooking) {},
			code:      http.StatusBadRequest,
		},
		{
			name:      "minute out of range",
			body:      `{"locationId":"R1","startMin":600,"endMin":2000,"date":"2024-05-01","username":"alice","userType":"employee"}`,
			setupMock: func(_ *serviceMocks.MockBooking) {},
			code:      http.StatusBadRequest,
			response:  `{"error":"endMin must be less than or equal to 1440"}`,
		},
		{
			name: "overlap",
			body: `{"locationId":"R1","startMin":630,"endMin":690,"date":"2024-05-01","username":"bob","userType":"employee"}`,
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.CreateBookingResponse{}, failure.Conflict("This time overlaps with an existing booking."))
			},
			code:     http.StatusConflict,
			response: `{"error":"This time overlaps with an existing booking."}`,
		},
		{
			name: "internal",
			body: `{"locationId":"R1","startMin":630,"endMin":690,"date":"2024-05-01","username":"bob","userType":"employee"}`,
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.CreateBookingResponse{}, errors.New("failed to create booking: connection reset"))
			},
			code:     http.StatusInternalServerError,
			response: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			recorder := serve(router, http.MethodPost, "/api/bookings", tt.body)

			assert.Equal(t, tt.code, recorder.Code)

			if tt.response != "" {
				assert.JSONEq(t, tt.response, recorder.Body.String())
			}
		})
	}
}

func TestHandler_DeleteBooking(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		err      error
		code     int
		response string
	}{
		{
			name:     "deleted",
			target:   "/api/bookings/b-1?username=alice&userType=employee",
			code:     http.StatusOK,
			response: `{"ok":true}`,
		},
		{
			name:     "forbidden",
			target:   "/api/bookings/b-1?username=bob&userType=employee",
			err:      failure.Forbidden("You do not have permission to remove this booking."),
			code:     http.StatusForbidden,
			response: `{"error":"You do not have permission to remove this booking."}`,
		},
		{
			name:     "unknown",
			target:   "/api/bookings/b-1?username=alice&userType=employee",
			err:      failure.NotFound("Booking not found."),
			code:     http.StatusNotFound,
			response: `{"error":"Booking not found."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			query := strings.SplitN(strings.SplitN(tt.target, "?", 2)[1], "&", 2)
			username := strings.TrimPrefix(query[0], "username=")
			userType := strings.TrimPrefix(query[1], "userType=")

			res := dto.DeleteBookingResponse{}
			if tt.err == nil {
				res.OK = true
			}

			svc.EXPECT().
				Delete(gomock.Any(), dto.DeleteBookingRequest{ID: "b-1", Username: username, UserType: userType}).
				Return(res, tt.err)

			recorder := serve(router, http.MethodDelete, tt.target, "")

			assert.Equal(t, tt.code, recorder.Code)
			assert.JSONEq(t, tt.response, recorder.Body.String())
		})
	}
}

func TestHandler_GetLocationAvailability(t *testing.T) {
	svc, router := newRouter(t)

	until, untilMin := "11:00", 660

	svc.EXPECT().
		Availability(gomock.Any(), dto.AvailabilityRequest{LocationIDs: []string{"R1"}, Date: "2024-05-01", At: "10:15"}).
		Return(dto.AvailabilityOverviewResponse{
			Date: "2024-05-01",
			At:   "10:15",
			Locations: []dto.AvailabilityResponse{{
				LocationID: "R1",
				Date:       "2024-05-01",
				At:         "10:15",
				Status:     "booked",
				Label:      "Booked until 11:00",
				Until:      &until,
				UntilMin:   &untilMin,
			}},
		}, nil)

	recorder := serve(router, http.MethodGet, "/api/locations/R1/availability?date=2024-05-01&at=10:15", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"locationId":"R1","date":"2024-05-01","at":"10:15","status":"booked","label":"Booked until 11:00","until":"11:00","untilMin":660}`,
		recorder.Body.String())
}

func TestHandler_GetAvailability(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		Availability(gomock.Any(), dto.AvailabilityRequest{LocationIDs: []string{"R1", "R2"}}).
		Return(dto.AvailabilityOverviewResponse{Date: "2024-05-01", At: "10:15", Locations: []dto.AvailabilityResponse{}}, nil)

	recorder := serve(router, http.MethodGet, "/api/availability?locationIds=R1,%20R2,", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"date":"2024-05-01","at":"10:15","locations":[]}`, recorder.Body.String())
}

func TestHandler_GetAvailability_BadClock(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Availability(gomock.Any(), gomock.Any()).Return(dto.AvailabilityOverviewResponse{}, failure.InvalidClockParam)

	recorder := serve(router, http.MethodGet, "/api/availability?at=noon", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_GetSlots(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Slots(gomock.Any()).Return(dto.SlotsResponse{DayStart: 540, DayEnd: 600, Step: 30, Slots: []string{"09:00", "09:30", "10:00"}})

	recorder := serve(router, http.MethodGet, "/api/slots", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"dayStart":540,"dayEnd":600,"step":30,"slots":["09:00","09:30","10:00"]}`, recorder.Body.String())
}
