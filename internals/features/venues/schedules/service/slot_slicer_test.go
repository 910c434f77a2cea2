package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func mustTOD(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := parseTOD(s)
	if err != nil {
		t.Fatalf("parseTOD(%q): %v", s, err)
	}
	return v
}

func rng(t *testing.T, start, end string) timeRange {
	t.Helper()
	return timeRange{start: mustTOD(t, start), end: mustTOD(t, end)}
}

func testIDs() uuidPair {
	return uuidPair{fieldParty: uuid.New(), schedule: uuid.New()}
}

func baseRules(session, gap int) *scheduleRules {
	return &scheduleRules{sessionMinutes: session, gapMinutes: gap}
}

/* =========================
   Slicer
========================= */

func TestSliceDay_TwoFullSlots(t *testing.T) {
	// 09:00–11:00, sesi 60 menit, gap 0 → [09:00–10:00] dan [10:00–11:00], harga 5000.
	rules := baseRules(60, 0)
	rules.priceTiers = []priceTier{{timeRange: rng(t, "09:00", "11:00"), price: 5000}}

	slots, dropped := sliceDay(date(2025, 1, 6), rng(t, "09:00", "11:00"), rules, testIDs())
	if dropped != 0 {
		t.Fatalf("expected 0 dropped, got %d", dropped)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].FieldPartySlotStartTime != "09:00" || slots[0].FieldPartySlotEndTime != "10:00" {
		t.Errorf("slot[0] = %s–%s", slots[0].FieldPartySlotStartTime, slots[0].FieldPartySlotEndTime)
	}
	if slots[1].FieldPartySlotStartTime != "10:00" || slots[1].FieldPartySlotEndTime != "11:00" {
		t.Errorf("slot[1] = %s–%s", slots[1].FieldPartySlotStartTime, slots[1].FieldPartySlotEndTime)
	}
	for i, s := range slots {
		if s.FieldPartySlotPrice != 5000 {
			t.Errorf("slot[%d] price = %v, want 5000", i, s.FieldPartySlotPrice)
		}
	}
}

func TestSliceDay_NoPartialSlot(t *testing.T) {
	// 09:00–10:30, sesi 60 menit → hanya [09:00–10:00]; sisa 30 menit tidak jadi slot.
	rules := baseRules(60, 0)
	rules.priceTiers = []priceTier{{timeRange: rng(t, "00:00", "23:59"), price: 100}}

	slots, _ := sliceDay(date(2025, 1, 6), rng(t, "09:00", "10:30"), rules, testIDs())
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].FieldPartySlotEndTime != "10:00" {
		t.Errorf("slot end = %s, want 10:00", slots[0].FieldPartySlotEndTime)
	}
}

func TestSliceDay_BreakKillsBothSlots(t *testing.T) {
	// Break 09:30–10:30 menyentuh kedua kandidat 09:00–10:00 dan 10:00–11:00.
	rules := baseRules(60, 0)
	rules.breakPeriods = []timeRange{rng(t, "09:30", "10:30")}
	rules.priceTiers = []priceTier{{timeRange: rng(t, "00:00", "23:59"), price: 100}}

	slots, dropped := sliceDay(date(2025, 1, 6), rng(t, "09:00", "11:00"), rules, testIDs())
	if len(slots) != 0 {
		t.Fatalf("expected 0 slots, got %d", len(slots))
	}
	if dropped != 0 {
		t.Fatalf("break rejections must not count as dropped, got %d", dropped)
	}
}

func TestSliceDay_FixedCadenceAfterRejection(t *testing.T) {
	// Break menolak kandidat pertama; kursor tetap maju session+gap, bukan sliding.
	// 09:00–12:00, sesi 60, gap 15. Kandidat: 09:00, 10:15, 11:30(partial→stop... cek).
	// 11:30+60=12:30 > 12:00 → hanya 2 kandidat. Break 09:15–09:45 buang yang pertama.
	rules := baseRules(60, 15)
	rules.breakPeriods = []timeRange{rng(t, "09:15", "09:45")}
	rules.priceTiers = []priceTier{{timeRange: rng(t, "00:00", "23:59"), price: 100}}

	slots, _ := sliceDay(date(2025, 1, 6), rng(t, "09:00", "12:00"), rules, testIDs())
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].FieldPartySlotStartTime != "10:15" {
		t.Errorf("slot start = %s, want 10:15 (cadence must not slide)", slots[0].FieldPartySlotStartTime)
	}
}

func TestSliceDay_NoTierDropsAndCounts(t *testing.T) {
	// Tier hanya mencakup 09:00–10:00; kandidat kedua jatuh di luar → drop + hitung.
	rules := baseRules(60, 0)
	rules.priceTiers = []priceTier{{timeRange: rng(t, "09:00", "10:00"), price: 7500}}

	slots, dropped := sliceDay(date(2025, 1, 6), rng(t, "09:00", "11:00"), rules, testIDs())
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped, got %d", dropped)
	}
}

/* =========================
   Break overlap
========================= */

func TestOverlapsAnyBreak_Boundaries(t *testing.T) {
	d := date(2025, 1, 6)
	br := []timeRange{rng(t, "10:00", "11:00").onDate(d)}

	at := func(s string) time.Time { return combineDateTOD(d, mustTOD(t, s)) }

	// Bersentuhan di batas = bukan overlap.
	if overlapsAnyBreak(at("09:00"), at("10:00"), br) {
		t.Error("slot ending at break start must not overlap")
	}
	if overlapsAnyBreak(at("11:00"), at("12:00"), br) {
		t.Error("slot starting at break end must not overlap")
	}
	// Satu menit masuk = overlap.
	if !overlapsAnyBreak(at("09:30"), at("10:01"), br) {
		t.Error("slot crossing into break must overlap")
	}
	if !overlapsAnyBreak(at("10:15"), at("10:45"), br) {
		t.Error("slot inside break must overlap")
	}
	if !overlapsAnyBreak(at("09:00"), at("12:00"), br) {
		t.Error("slot containing break must overlap")
	}
}

/* =========================
   Price tier resolver
========================= */

func TestResolvePrice_FullContainmentFirstMatch(t *testing.T) {
	d := date(2025, 1, 6)
	at := func(s string) time.Time { return combineDateTOD(d, mustTOD(t, s)) }

	tiers := []priceTier{
		{timeRange: rng(t, "09:00", "12:00").onDate(d), price: 5000},
		{timeRange: rng(t, "09:00", "18:00").onDate(d), price: 9000},
	}

	// Terkandung penuh di tier pertama → tier pertama menang meski tier kedua juga cocok.
	if p, ok := resolvePrice(at("10:00"), at("11:00"), tiers); !ok || p != 5000 {
		t.Errorf("got (%v,%v), want (5000,true)", p, ok)
	}
	// Hanya tier kedua yang mengandung penuh.
	if p, ok := resolvePrice(at("13:00"), at("14:00"), tiers); !ok || p != 9000 {
		t.Errorf("got (%v,%v), want (9000,true)", p, ok)
	}
	// Melewati batas 12:00 → tier pertama gagal containment, tier kedua mengandung.
	if p, ok := resolvePrice(at("11:30"), at("12:30"), tiers); !ok || p != 9000 {
		t.Errorf("got (%v,%v), want (9000,true)", p, ok)
	}
	// Di luar semua tier.
	if _, ok := resolvePrice(at("18:00"), at("19:00"), tiers); ok {
		t.Error("slot outside all tiers must not resolve")
	}
	// Batas persis tier = terkandung.
	if p, ok := resolvePrice(at("09:00"), at("12:00"), tiers); !ok || p != 5000 {
		t.Errorf("exact tier bounds: got (%v,%v), want (5000,true)", p, ok)
	}
}
