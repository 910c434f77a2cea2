package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEnumerateWorkingDates_EmptyWhenFromAfterTo(t *testing.T) {
	got := EnumerateWorkingDates(date(2025, 1, 10), date(2025, 1, 6), []int{1, 2, 3, 4, 5, 6, 7}, nil)
	if len(got) != 0 {
		t.Fatalf("expected empty sequence, got %d dates", len(got))
	}
}

func TestEnumerateWorkingDates_EmptyWhenNoWorkingDays(t *testing.T) {
	got := EnumerateWorkingDates(date(2025, 1, 6), date(2025, 1, 12), nil, nil)
	if len(got) != 0 {
		t.Fatalf("expected empty sequence, got %d dates", len(got))
	}
}

func TestEnumerateWorkingDates_WeekdayMaskAndExclusions(t *testing.T) {
	// 2025-01-06 adalah Senin. Dua minggu, hanya Senin & Rabu, Rabu pertama libur.
	from := date(2025, 1, 6)
	to := date(2025, 1, 19)
	excluded := []time.Time{date(2025, 1, 8)}

	got := EnumerateWorkingDates(from, to, []int{1, 3}, excluded)

	want := []time.Time{
		date(2025, 1, 6),  // Sen
		date(2025, 1, 13), // Sen
		date(2025, 1, 15), // Rab
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("date[%d]: expected %s, got %s", i, want[i].Format("2006-01-02"), got[i].Format("2006-01-02"))
		}
	}
}

func TestEnumerateWorkingDates_AscendingAndAllValid(t *testing.T) {
	from := date(2025, 3, 1)
	to := date(2025, 3, 31)
	days := []int{2, 4, 6}
	excluded := []time.Time{date(2025, 3, 6), date(2025, 3, 8)}

	got := EnumerateWorkingDates(from, to, days, excluded)
	if len(got) == 0 {
		t.Fatal("expected at least one date")
	}

	daySet := map[int]bool{2: true, 4: true, 6: true}
	for i, d := range got {
		if !daySet[isoWeekday(d)] {
			t.Errorf("date %s has weekday %d outside mask", d.Format("2006-01-02"), isoWeekday(d))
		}
		for _, ex := range excluded {
			if d.Equal(ex) {
				t.Errorf("excluded date %s leaked into output", d.Format("2006-01-02"))
			}
		}
		if i > 0 && !got[i-1].Before(d) {
			t.Errorf("output not ascending at index %d", i)
		}
	}
}

func TestEnumerateWorkingDates_SingleDayWindow(t *testing.T) {
	// Jendela satu hari yang jatuh di hari kerja → tepat satu tanggal.
	d := date(2025, 1, 6) // Senin
	got := EnumerateWorkingDates(d, d, []int{1}, nil)
	if len(got) != 1 || !got[0].Equal(d) {
		t.Fatalf("expected exactly [%s], got %v", d.Format("2006-01-02"), got)
	}
}

func TestParseTOD(t *testing.T) {
	if _, err := parseTOD("09:30"); err != nil {
		t.Errorf("HH:mm should parse: %v", err)
	}
	if _, err := parseTOD("09:30:15"); err != nil {
		t.Errorf("HH:mm:ss should parse: %v", err)
	}
	if _, err := parseTOD("9.30"); err == nil {
		t.Error("expected error for malformed time-of-day")
	}
}

func TestIsoWeekday_SundayIsSeven(t *testing.T) {
	sun := date(2025, 1, 12)
	if got := isoWeekday(sun); got != 7 {
		t.Fatalf("expected 7 for Sunday, got %d", got)
	}
	mon := date(2025, 1, 6)
	if got := isoWeekday(mon); got != 1 {
		t.Fatalf("expected 1 for Monday, got %d", got)
	}
}
