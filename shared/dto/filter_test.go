package dto_test

import (
	"smartoffice/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Filter{Field: "booking_date", Value: "2024-05-01", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.booking_date = :booking_date",
			wantArgs:  map[string]any{"booking_date": "2024-05-01"},
		},
		{
			name:      "custom arg name",
			filter:    dto.Filter{ArgName: "owner", Field: "username", Value: "alice", Operator: dto.FilterOperatorNotEq},
			wantWhere: "username != :owner",
			wantArgs:  map[string]any{"owner": "alice"},
		},
		{
			name:      "in expands each element",
			filter:    dto.Filter{Field: "location_id", Value: []string{"R1", "R2"}, Operator: dto.FilterOperatorIn},
			wantWhere: "location_id IN (:location_id_0, :location_id_1) ",
			wantArgs:  map[string]any{"location_id_0": "R1", "location_id_1": "R2"},
		},
		{
			name:      "range bounds",
			filter:    dto.Filter{Field: "start_min", Value: 540, Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "start_min >= :start_min",
			wantArgs:  map[string]any{"start_min": 540},
		},
		{
			name:      "unknown operator yields nothing",
			filter:    dto.Filter{Field: "id", Value: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "booking_date", Value: "2024-05-01", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "username", Value: "alice", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "location_id", Value: "R1", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(booking_date = :booking_date AND (username = :username OR location_id = :location_id))", where)
	assert.Equal(t, map[string]any{"booking_date": "2024-05-01", "username": "alice", "location_id": "R1"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}
