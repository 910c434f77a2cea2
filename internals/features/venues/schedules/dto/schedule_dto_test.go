// file: internals/features/venues/schedules/dto/schedule_dto_test.go
package dto

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestParseTOD_Formats(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"09:30", true},
		{"09:30:00", true},
		{"9:30", true}, // jam satu digit tetap diterima time.Parse
		{" 10:00 ", true},
		{"25:00", false},
		{"09:60", false},
		{"0930", false},
		{"", false},
	}
	for _, c := range cases {
		_, err := parseTOD(c.in)
		if c.ok && err != nil {
			t.Errorf("parseTOD(%q): unexpected error %v", c.in, err)
		}
		if !c.ok && err == nil {
			t.Errorf("parseTOD(%q): expected error", c.in)
		}
	}
}

func TestValidateRanges_ShortHourNoPanic(t *testing.T) {
	// Input 4 karakter ("9:30") tidak boleh bikin panic di validator.
	err := validateRanges([]TimeRangeReq{{Start: "9:30", End: "10:30"}}, "working_periods")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = validateRanges([]TimeRangeReq{{Start: "9:30", End: "9:30"}}, "working_periods")
	if err == nil || !strings.Contains(err.Error(), "end harus > start") {
		t.Fatalf("expected end>start error, got %v", err)
	}
}

func TestValidateRanges_BadFormatIsError(t *testing.T) {
	err := validateRanges([]TimeRangeReq{{Start: "abc", End: "10:00"}}, "break_periods")
	if err == nil || !strings.Contains(err.Error(), "break_periods") {
		t.Fatalf("expected format error with field name, got %v", err)
	}
}

func TestCreateRequest_Validate_ShortHour(t *testing.T) {
	v := validator.New()
	req := CreateFieldPartyScheduleRequest{
		FieldPartyScheduleFieldPartyID:   "8f7f1f1e-2a2b-4c3d-9e5f-6a7b8c9d0e1f",
		FieldPartyScheduleActiveFrom:     "2025-01-06",
		FieldPartyScheduleActiveTo:       "2025-01-12",
		FieldPartyScheduleWorkingDays:    []int{1, 2, 3, 4, 5},
		FieldPartyScheduleWorkingPeriods: []TimeRangeReq{{Start: "9:30", End: "11:30"}},
		FieldPartySchedulePriceTiers:     []PriceTierReq{{Start: "9:30", End: "11:30", Price: 5000}},
		FieldPartyScheduleSessionMinutes: 60,
	}
	if err := req.Validate(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req.FieldPartySchedulePriceTiers = []PriceTierReq{{Start: "9:3", End: "11:30", Price: 5000}}
	if err := req.Validate(v); err == nil || !strings.Contains(err.Error(), "price_tiers") {
		t.Fatalf("expected price_tiers error, got %v", err)
	}
}
