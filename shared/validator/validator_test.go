package validator_test

import (
	"net/http"
	"smartoffice/shared/failure"
	"smartoffice/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingLike struct {
	LocationID string `json:"locationId" validate:"required,max=64,nospace"`
	Date       string `json:"date"       validate:"required,datetime=2006-01-02"`
	StartMin   *int   `json:"startMin"   validate:"required,gte=0,lte=1440"`
	UserType   string `json:"userType"   validate:"required,oneof=admin employee visitor"`
}

func intPtr(i int) *int {
	return &i
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    bookingLike
		wantMsg string
	}{
		{
			name: "valid struct",
			data: bookingLike{LocationID: "R1", Date: "2024-05-01", StartMin: intPtr(540), UserType: "employee"},
		},
		{
			name:    "missing field is reported by json name",
			data:    bookingLike{Date: "2024-05-01", StartMin: intPtr(540), UserType: "employee"},
			wantMsg: "locationId is required",
		},
		{
			name:    "bad date layout",
			data:    bookingLike{LocationID: "R1", Date: "01/05/2024", StartMin: intPtr(540), UserType: "employee"},
			wantMsg: "date must be formatted as 2006-01-02",
		},
		{
			name:    "zero pointer still counts as present",
			data:    bookingLike{LocationID: "R1", Date: "2024-05-01", StartMin: intPtr(0), UserType: "admin"},
			wantMsg: "",
		},
		{
			name:    "minute out of range",
			data:    bookingLike{LocationID: "R1", Date: "2024-05-01", StartMin: intPtr(1441), UserType: "admin"},
			wantMsg: "startMin must be less than or equal to 1440",
		},
		{
			name:    "unknown role",
			data:    bookingLike{LocationID: "R1", Date: "2024-05-01", StartMin: intPtr(540), UserType: "guest"},
			wantMsg: "userType must be one of admin employee visitor",
		},
		{
			name:    "padded id",
			data:    bookingLike{LocationID: " R1", Date: "2024-05-01", StartMin: intPtr(540), UserType: "admin"},
			wantMsg: "locationId must not start or end with spaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid day", field: "2024-02-29", tag: "datetime=2006-01-02"},
		{name: "impossible day", field: "2023-02-29", tag: "datetime=2006-01-02", expectError: true},
		{name: "valid number in range", field: 25, tag: "gte=0,lte=100"},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{name: "valid JSON", jsonBody: `{"locationId":"R1","date":"2024-05-01","startMin":540,"userType":"admin"}`},
		{name: "invalid field", jsonBody: `{"locationId":"R1","date":"2024-05-01","startMin":-5,"userType":"admin"}`, expectError: true},
		{name: "malformed JSON", jsonBody: `{"locationId":}`, expectError: true},
		{name: "empty JSON", jsonBody: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingLike

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)
			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecode_LeavesValidationToCaller(t *testing.T) {
	var data bookingLike

	require.NoError(t, validator.Decode(strings.NewReader(`{}`), &data))
	assert.Nil(t, data.StartMin)

	err := validator.Decode(strings.NewReader(`not json`), &data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode request body")
}
