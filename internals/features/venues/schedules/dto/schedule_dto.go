// file: internals/features/venues/schedules/dto/schedule_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "arenaku_backend/internals/features/venues/schedules/model"
)

/* =======================================================
   Util & parsing
   ======================================================= */

var (
	layoutDate = "2006-01-02" // DATE
	layoutT1   = "15:04"      // TIME (HH:mm)
	layoutT2   = "15:04:05"   // TIME (HH:mm:ss)
)

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (want YYYY-MM-DD): %w", err)
	}
	return t, nil
}

func parseTOD(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(layoutT1, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutT2, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("jam %q harus HH:mm atau HH:mm:ss", s)
}

/* =======================================================
   Sub-dokumen request
   ======================================================= */

type TimeRangeReq struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end"   validate:"required"`
}

type PriceTierReq struct {
	Start string  `json:"start" validate:"required"`
	End   string  `json:"end"   validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

func validateRanges(rs []TimeRangeReq, field string) error {
	for _, r := range rs {
		st, err := parseTOD(r.Start)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		en, err := parseTOD(r.End)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		if !en.After(st) {
			return fmt.Errorf("%s: end harus > start (%s–%s)", field, r.Start, r.End)
		}
	}
	return nil
}

func validateTiers(ts []PriceTierReq) error {
	rs := make([]TimeRangeReq, 0, len(ts))
	for _, t := range ts {
		rs = append(rs, TimeRangeReq{Start: t.Start, End: t.End})
	}
	return validateRanges(rs, "price_tiers")
}

/* =======================================================
   Request DTOs
   - Tanggal & jam pakai string supaya simpel dari FE
   ======================================================= */

type CreateFieldPartyScheduleRequest struct {
	// Required
	FieldPartyScheduleFieldPartyID   string         `json:"field_party_schedule_field_party_id" validate:"required,uuid4"`
	FieldPartyScheduleActiveFrom     string         `json:"field_party_schedule_active_from"    validate:"required"` // "YYYY-MM-DD"
	FieldPartyScheduleActiveTo       string         `json:"field_party_schedule_active_to"      validate:"required"`
	FieldPartyScheduleWorkingDays    []int          `json:"field_party_schedule_working_days"   validate:"required,min=1,dive,gte=1,lte=7"`
	FieldPartyScheduleWorkingPeriods []TimeRangeReq `json:"field_party_schedule_working_periods" validate:"required,min=1,dive"`
	FieldPartySchedulePriceTiers     []PriceTierReq `json:"field_party_schedule_price_tiers"    validate:"required,min=1,dive"`
	FieldPartyScheduleSessionMinutes int            `json:"field_party_schedule_session_minutes" validate:"required,gt=0"`

	// Optional
	FieldPartyScheduleExcludedDates         []string       `json:"field_party_schedule_excluded_dates,omitempty"`
	FieldPartyScheduleBreakPeriods          []TimeRangeReq `json:"field_party_schedule_break_periods,omitempty" validate:"omitempty,dive"`
	FieldPartyScheduleGapMinutes            *int           `json:"field_party_schedule_gap_minutes,omitempty"   validate:"omitempty,gte=0"`
	FieldPartyScheduleMaxConcurrentBookings *int           `json:"field_party_schedule_max_concurrent_bookings,omitempty" validate:"omitempty,gt=0"`
	FieldPartyScheduleIsActive              *bool          `json:"field_party_schedule_is_active,omitempty"`
}

func (r *CreateFieldPartyScheduleRequest) Validate(v *validator.Validate) error {
	if v != nil {
		if err := v.Struct(r); err != nil {
			return err
		}
	}
	if err := validateRanges(r.FieldPartyScheduleWorkingPeriods, "working_periods"); err != nil {
		return err
	}
	if err := validateRanges(r.FieldPartyScheduleBreakPeriods, "break_periods"); err != nil {
		return err
	}
	if err := validateTiers(r.FieldPartySchedulePriceTiers); err != nil {
		return err
	}
	for _, s := range r.FieldPartyScheduleExcludedDates {
		if _, err := parseDate(s); err != nil {
			return fmt.Errorf("excluded_dates: %w", err)
		}
	}
	return nil
}

func (r *CreateFieldPartyScheduleRequest) ApplyToModel(dst *m.FieldPartyScheduleModel) error {
	fpID, err := uuid.Parse(r.FieldPartyScheduleFieldPartyID)
	if err != nil {
		return fmt.Errorf("field_party_id invalid: %w", err)
	}

	from, err := parseDate(r.FieldPartyScheduleActiveFrom)
	if err != nil {
		return err
	}
	to, err := parseDate(r.FieldPartyScheduleActiveTo)
	if err != nil {
		return err
	}
	if to.Before(from) {
		return errors.New("field_party_schedule_active_to must be >= active_from")
	}

	days, err := m.EncodeJSONDoc(r.FieldPartyScheduleWorkingDays)
	if err != nil {
		return err
	}
	periods, err := m.EncodeJSONDoc(toRangeDocs(r.FieldPartyScheduleWorkingPeriods))
	if err != nil {
		return err
	}
	tiers, err := m.EncodeJSONDoc(toTierDocs(r.FieldPartySchedulePriceTiers))
	if err != nil {
		return err
	}

	dst.FieldPartyScheduleFieldPartyID = fpID
	dst.FieldPartyScheduleActiveFrom = from
	dst.FieldPartyScheduleActiveTo = to
	dst.FieldPartyScheduleWorkingDays = days
	dst.FieldPartyScheduleWorkingPeriods = periods
	dst.FieldPartySchedulePriceTiers = tiers
	dst.FieldPartyScheduleSessionMinutes = r.FieldPartyScheduleSessionMinutes

	if len(r.FieldPartyScheduleExcludedDates) > 0 {
		ex, err := m.EncodeJSONDoc(r.FieldPartyScheduleExcludedDates)
		if err != nil {
			return err
		}
		dst.FieldPartyScheduleExcludedDates = ex
	}
	if len(r.FieldPartyScheduleBreakPeriods) > 0 {
		br, err := m.EncodeJSONDoc(toRangeDocs(r.FieldPartyScheduleBreakPeriods))
		if err != nil {
			return err
		}
		dst.FieldPartyScheduleBreakPeriods = br
	}
	if r.FieldPartyScheduleGapMinutes != nil {
		dst.FieldPartyScheduleGapMinutes = *r.FieldPartyScheduleGapMinutes
	}
	if r.FieldPartyScheduleMaxConcurrentBookings != nil {
		dst.FieldPartyScheduleMaxConcurrentBookings = *r.FieldPartyScheduleMaxConcurrentBookings
	} else {
		dst.FieldPartyScheduleMaxConcurrentBookings = 1
	}
	if r.FieldPartyScheduleIsActive != nil {
		dst.FieldPartyScheduleIsActive = *r.FieldPartyScheduleIsActive
	} else {
		dst.FieldPartyScheduleIsActive = true
	}
	return nil
}

type PatchFieldPartyScheduleRequest struct {
	// Semua optional — hanya field non-nil yang di-apply
	FieldPartyScheduleActiveFrom            *string         `json:"field_party_schedule_active_from,omitempty"`
	FieldPartyScheduleActiveTo              *string         `json:"field_party_schedule_active_to,omitempty"`
	FieldPartyScheduleWorkingDays           *[]int          `json:"field_party_schedule_working_days,omitempty"   validate:"omitempty,min=1,dive,gte=1,lte=7"`
	FieldPartyScheduleExcludedDates         *[]string       `json:"field_party_schedule_excluded_dates,omitempty"`
	FieldPartyScheduleWorkingPeriods        *[]TimeRangeReq `json:"field_party_schedule_working_periods,omitempty" validate:"omitempty,min=1,dive"`
	FieldPartyScheduleBreakPeriods          *[]TimeRangeReq `json:"field_party_schedule_break_periods,omitempty"  validate:"omitempty,dive"`
	FieldPartySchedulePriceTiers            *[]PriceTierReq `json:"field_party_schedule_price_tiers,omitempty"    validate:"omitempty,min=1,dive"`
	FieldPartyScheduleSessionMinutes        *int            `json:"field_party_schedule_session_minutes,omitempty" validate:"omitempty,gt=0"`
	FieldPartyScheduleGapMinutes            *int            `json:"field_party_schedule_gap_minutes,omitempty"    validate:"omitempty,gte=0"`
	FieldPartyScheduleMaxConcurrentBookings *int            `json:"field_party_schedule_max_concurrent_bookings,omitempty" validate:"omitempty,gt=0"`
	FieldPartyScheduleIsActive              *bool           `json:"field_party_schedule_is_active,omitempty"`
}

func (r *PatchFieldPartyScheduleRequest) Validate(v *validator.Validate) error {
	if v != nil {
		if err := v.Struct(r); err != nil {
			return err
		}
	}
	if r.FieldPartyScheduleWorkingPeriods != nil {
		if err := validateRanges(*r.FieldPartyScheduleWorkingPeriods, "working_periods"); err != nil {
			return err
		}
	}
	if r.FieldPartyScheduleBreakPeriods != nil {
		if err := validateRanges(*r.FieldPartyScheduleBreakPeriods, "break_periods"); err != nil {
			return err
		}
	}
	if r.FieldPartySchedulePriceTiers != nil {
		if err := validateTiers(*r.FieldPartySchedulePriceTiers); err != nil {
			return err
		}
	}
	if r.FieldPartyScheduleExcludedDates != nil {
		for _, s := range *r.FieldPartyScheduleExcludedDates {
			if _, err := parseDate(s); err != nil {
				return fmt.Errorf("excluded_dates: %w", err)
			}
		}
	}
	return nil
}

func (r *PatchFieldPartyScheduleRequest) ApplyPatch(dst *m.FieldPartyScheduleModel) error {
	if r.FieldPartyScheduleActiveFrom != nil {
		from, err := parseDate(*r.FieldPartyScheduleActiveFrom)
		if err != nil {
			return err
		}
		dst.FieldPartyScheduleActiveFrom = from
	}
	if r.FieldPartyScheduleActiveTo != nil {
		to, err := parseDate(*r.FieldPartyScheduleActiveTo)
		if err != nil {
			return err
		}
		dst.FieldPartyScheduleActiveTo = to
	}
	if dst.FieldPartyScheduleActiveTo.Before(dst.FieldPartyScheduleActiveFrom) {
		return errors.New("field_party_schedule_active_to must be >= active_from")
	}
	if r.FieldPartyScheduleWorkingDays != nil {
		doc, err := m.EncodeJSONDoc(*r.FieldPartyScheduleWorkingDays)
		if err != nil {
			return err
		}
		dst.FieldPartyScheduleWorkingDays = doc
	}
	if r.FieldPartyScheduleExcludedDates != nil {
		doc, err := m.EncodeJSONDoc(*r.FieldPartyScheduleExcludedDates)
		if err != nil {
			return err
		}
		dst.FieldPartyScheduleExcludedDates = doc
	}
	if r.FieldPartyScheduleWorkingPeriods != nil {
		doc, err := m.EncodeJSONDoc(toRangeDocs(*r.FieldPartyScheduleWorkingPeriods))
		if err != nil {
			return err
		}
		dst.FieldPartyScheduleWorkingPeriods = doc
	}
	if r.FieldPartyScheduleBreakPeriods != nil {
		doc, err := m.EncodeJSONDoc(toRangeDocs(*r.FieldPartyScheduleBreakPeriods))
		if err != nil {
			return err
		}
		dst.FieldPartyScheduleBreakPeriods = doc
	}
	if r.FieldPartySchedulePriceTiers != nil {
		doc, err := m.EncodeJSONDoc(toTierDocs(*r.FieldPartySchedulePriceTiers))
		if err != nil {
			return err
		}
		dst.FieldPartySchedulePriceTiers = doc
	}
	if r.FieldPartyScheduleSessionMinutes != nil {
		dst.FieldPartyScheduleSessionMinutes = *r.FieldPartyScheduleSessionMinutes
	}
	if r.FieldPartyScheduleGapMinutes != nil {
		dst.FieldPartyScheduleGapMinutes = *r.FieldPartyScheduleGapMinutes
	}
	if r.FieldPartyScheduleMaxConcurrentBookings != nil {
		dst.FieldPartyScheduleMaxConcurrentBookings = *r.FieldPartyScheduleMaxConcurrentBookings
	}
	if r.FieldPartyScheduleIsActive != nil {
		dst.FieldPartyScheduleIsActive = *r.FieldPartyScheduleIsActive
	}
	return nil
}

func toRangeDocs(rs []TimeRangeReq) []m.TimeRangeDoc {
	out := make([]m.TimeRangeDoc, 0, len(rs))
	for _, r := range rs {
		out = append(out, m.TimeRangeDoc{Start: strings.TrimSpace(r.Start), End: strings.TrimSpace(r.End)})
	}
	return out
}

func toTierDocs(ts []PriceTierReq) []m.PriceTierDoc {
	out := make([]m.PriceTierDoc, 0, len(ts))
	for _, t := range ts {
		out = append(out, m.PriceTierDoc{Start: strings.TrimSpace(t.Start), End: strings.TrimSpace(t.End), Price: t.Price})
	}
	return out
}

/* =======================================================
   Response
   ======================================================= */

type FieldPartyScheduleResponse struct {
	FieldPartyScheduleID                    uuid.UUID      `json:"field_party_schedule_id"`
	FieldPartyScheduleFieldPartyID          uuid.UUID      `json:"field_party_schedule_field_party_id"`
	FieldPartyScheduleActiveFrom            string         `json:"field_party_schedule_active_from"`
	FieldPartyScheduleActiveTo              string         `json:"field_party_schedule_active_to"`
	FieldPartyScheduleWorkingDays           []int          `json:"field_party_schedule_working_days"`
	FieldPartyScheduleExcludedDates         []string       `json:"field_party_schedule_excluded_dates,omitempty"`
	FieldPartyScheduleWorkingPeriods        []TimeRangeReq `json:"field_party_schedule_working_periods"`
	FieldPartyScheduleBreakPeriods          []TimeRangeReq `json:"field_party_schedule_break_periods,omitempty"`
	FieldPartySchedulePriceTiers            []PriceTierReq `json:"field_party_schedule_price_tiers"`
	FieldPartyScheduleSessionMinutes        int            `json:"field_party_schedule_session_minutes"`
	FieldPartyScheduleGapMinutes            int            `json:"field_party_schedule_gap_minutes"`
	FieldPartyScheduleMaxConcurrentBookings int            `json:"field_party_schedule_max_concurrent_bookings"`
	FieldPartyScheduleIsActive              bool           `json:"field_party_schedule_is_active"`
	FieldPartyScheduleCreatedAt             time.Time      `json:"field_party_schedule_created_at"`
	FieldPartyScheduleUpdatedAt             time.Time      `json:"field_party_schedule_updated_at"`
}

func NewFieldPartyScheduleResponse(src *m.FieldPartyScheduleModel) FieldPartyScheduleResponse {
	resp := FieldPartyScheduleResponse{
		FieldPartyScheduleID:                    src.FieldPartyScheduleID,
		FieldPartyScheduleFieldPartyID:          src.FieldPartyScheduleFieldPartyID,
		FieldPartyScheduleActiveFrom:            src.FieldPartyScheduleActiveFrom.Format(layoutDate),
		FieldPartyScheduleActiveTo:              src.FieldPartyScheduleActiveTo.Format(layoutDate),
		FieldPartyScheduleSessionMinutes:        src.FieldPartyScheduleSessionMinutes,
		FieldPartyScheduleGapMinutes:            src.FieldPartyScheduleGapMinutes,
		FieldPartyScheduleMaxConcurrentBookings: src.FieldPartyScheduleMaxConcurrentBookings,
		FieldPartyScheduleIsActive:              src.FieldPartyScheduleIsActive,
		FieldPartyScheduleCreatedAt:             src.FieldPartyScheduleCreatedAt,
		FieldPartyScheduleUpdatedAt:             src.FieldPartyScheduleUpdatedAt,
	}

	// Dokumen JSON sudah tervalidasi saat masuk; decode error di sini diabaikan.
	if days, err := src.WorkingDayList(); err == nil {
		resp.FieldPartyScheduleWorkingDays = days
	}
	if ex, err := src.ExcludedDateList(); err == nil {
		for _, d := range ex {
			resp.FieldPartyScheduleExcludedDates = append(resp.FieldPartyScheduleExcludedDates, d.Format(layoutDate))
		}
	}
	if ps, err := src.WorkingPeriodList(); err == nil {
		for _, p := range ps {
			resp.FieldPartyScheduleWorkingPeriods = append(resp.FieldPartyScheduleWorkingPeriods, TimeRangeReq(p))
		}
	}
	if bs, err := src.BreakPeriodList(); err == nil {
		for _, b := range bs {
			resp.FieldPartyScheduleBreakPeriods = append(resp.FieldPartyScheduleBreakPeriods, TimeRangeReq(b))
		}
	}
	if ts, err := src.PriceTierList(); err == nil {
		for _, t := range ts {
			resp.FieldPartySchedulePriceTiers = append(resp.FieldPartySchedulePriceTiers, PriceTierReq(t))
		}
	}
	return resp
}
