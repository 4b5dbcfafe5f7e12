package model_test

import (
	"smartoffice/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  model.Role
		ok    bool
	}{
		{input: "admin", want: model.RoleAdmin, ok: true},
		{input: "ADMIN", want: model.RoleAdmin, ok: true},
		{input: " Employee ", want: model.RoleEmployee, ok: true},
		{input: "visitor", want: model.RoleVisitor, ok: true},
		{input: "root", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := model.ParseRole(tt.input)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_CanBook(t *testing.T) {
	assert.True(t, model.RoleAdmin.CanBook())
	assert.True(t, model.RoleEmployee.CanBook())
	assert.False(t, model.RoleVisitor.CanBook())
	assert.False(t, model.Role("").CanBook())
}

func TestBooking_DisplayName(t *testing.T) {
	assert.Equal(t, "Room 1", model.Booking{LocationID: "R1", LocationName: "Room 1"}.DisplayName())
	assert.Equal(t, "R1", model.Booking{LocationID: "R1"}.DisplayName())
}
