// file: internals/features/venues/schedules/service/slot_slicer.go
package service

import (
	"fmt"
	"time"

	m "arenaku_backend/internals/features/venues/schedules/model"
)

/* =========================
   Bentuk typed hasil decode konfigurasi
========================= */

type timeRange struct {
	start time.Time // jam dinding pada anchor 2000-01-01
	end   time.Time
}

type priceTier struct {
	timeRange
	price float64
}

// scheduleRules: konfigurasi yang sudah di-decode & divalidasi sekali di awal run.
type scheduleRules struct {
	workingDays    []int
	excludedDates  []time.Time
	workingPeriods []timeRange
	breakPeriods   []timeRange
	priceTiers     []priceTier
	sessionMinutes int
	gapMinutes     int
}

func decodeRules(cfg *m.FieldPartyScheduleModel) (*scheduleRules, error) {
	days, err := cfg.WorkingDayList()
	if err != nil {
		return nil, err
	}
	excluded, err := cfg.ExcludedDateList()
	if err != nil {
		return nil, err
	}
	periods, err := cfg.WorkingPeriodList()
	if err != nil {
		return nil, err
	}
	breaks, err := cfg.BreakPeriodList()
	if err != nil {
		return nil, err
	}
	tiers, err := cfg.PriceTierList()
	if err != nil {
		return nil, err
	}

	if cfg.FieldPartyScheduleSessionMinutes <= 0 {
		return nil, fmt.Errorf("session_minutes harus > 0")
	}
	if cfg.FieldPartyScheduleGapMinutes < 0 {
		return nil, fmt.Errorf("gap_minutes tidak boleh negatif")
	}

	r := &scheduleRules{
		workingDays:    days,
		excludedDates:  excluded,
		sessionMinutes: cfg.FieldPartyScheduleSessionMinutes,
		gapMinutes:     cfg.FieldPartyScheduleGapMinutes,
	}

	for _, p := range periods {
		tr, err := toTimeRange(p.Start, p.End, "working_periods")
		if err != nil {
			return nil, err
		}
		r.workingPeriods = append(r.workingPeriods, tr)
	}
	for _, b := range breaks {
		tr, err := toTimeRange(b.Start, b.End, "break_periods")
		if err != nil {
			return nil, err
		}
		r.breakPeriods = append(r.breakPeriods, tr)
	}
	for _, t := range tiers {
		tr, err := toTimeRange(t.Start, t.End, "price_tiers")
		if err != nil {
			return nil, err
		}
		r.priceTiers = append(r.priceTiers, priceTier{timeRange: tr, price: t.Price})
	}
	return r, nil
}

func toTimeRange(startStr, endStr, field string) (timeRange, error) {
	st, err := parseTOD(startStr)
	if err != nil {
		return timeRange{}, fmt.Errorf("%s: %w", field, err)
	}
	en, err := parseTOD(endStr)
	if err != nil {
		return timeRange{}, fmt.Errorf("%s: %w", field, err)
	}
	if !en.After(st) {
		return timeRange{}, fmt.Errorf("%s: end %q harus > start %q", field, endStr, startStr)
	}
	return timeRange{start: st, end: en}, nil
}

// onDate memindahkan jam dinding ke tanggal konkret.
func (r timeRange) onDate(d time.Time) timeRange {
	return timeRange{start: combineDateTOD(d, r.start), end: combineDateTOD(d, r.end)}
}

/* =========================
   Break overlap filter
========================= */

// overlapsAnyBreak: dua interval dianggap overlap kecuali salah satu selesai
// tepat saat (atau sebelum) yang lain mulai. OR across semua break.
func overlapsAnyBreak(slotStart, slotEnd time.Time, breaks []timeRange) bool {
	for _, b := range breaks {
		if !(!slotEnd.After(b.start) || !slotStart.Before(b.end)) {
			return true
		}
	}
	return false
}

/* =========================
   Price tier resolver
========================= */

// resolvePrice: slot harus masuk penuh ke satu tier (start >= tierStart && end <= tierEnd).
// Tier pertama yang cocok menang; resolver tidak memvalidasi tier saling-lepas.
func resolvePrice(slotStart, slotEnd time.Time, tiers []priceTier) (float64, bool) {
	for _, t := range tiers {
		if !slotStart.Before(t.start) && !slotEnd.After(t.end) {
			return t.price, true
		}
	}
	return 0, false
}

/* =========================
   Daily slot slicer
========================= */

// sliceDay memotong satu working period pada satu tanggal menjadi slot berdurasi
// tetap, greedy kiri→kanan. Kursor SELALU maju session+gap meskipun kandidat
// ditolak (kena break / tanpa tier) — irama start slot harus tetap, jangan
// diganti sliding search. Tidak pernah ada slot parsial.
// Return: slot yang lolos + jumlah kandidat yang di-drop karena tanpa tier.
func sliceDay(
	date time.Time,
	period timeRange,
	rules *scheduleRules,
	ids uuidPair,
) (slots []m.FieldPartySlotModel, dropped int) {
	p := period.onDate(date)
	session := time.Duration(rules.sessionMinutes) * time.Minute
	gap := time.Duration(rules.gapMinutes) * time.Minute

	var dayBreaks []timeRange
	for _, b := range rules.breakPeriods {
		dayBreaks = append(dayBreaks, b.onDate(date))
	}
	var dayTiers []priceTier
	for _, t := range rules.priceTiers {
		dayTiers = append(dayTiers, priceTier{timeRange: t.timeRange.onDate(date), price: t.price})
	}

	for cursor := p.start; !cursor.Add(session).After(p.end); cursor = cursor.Add(session + gap) {
		slotEnd := cursor.Add(session)

		if overlapsAnyBreak(cursor, slotEnd, dayBreaks) {
			continue
		}
		price, ok := resolvePrice(cursor, slotEnd, dayTiers)
		if !ok {
			// Tanpa tier → drop diam-diam, tapi tetap dihitung supaya kelihatan di response.
			dropped++
			continue
		}

		slots = append(slots, m.FieldPartySlotModel{
			FieldPartySlotFieldPartyID: ids.fieldParty,
			FieldPartySlotScheduleID:   ids.schedule,
			FieldPartySlotDate:         startOfDay(date),
			FieldPartySlotStartTime:    cursor.Format("15:04"),
			FieldPartySlotEndTime:      slotEnd.Format("15:04"),
			FieldPartySlotPrice:        price,
			FieldPartySlotIsBooked:     false,
			FieldPartySlotIsPaid:       false,
		})
	}
	return slots, dropped
}
