// file: internals/features/venues/schedules/service/working_dates.go
package service

import (
	"fmt"
	"time"
)

/* =========================
   Helpers waktu
========================= */

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// parseTOD menerima "HH:mm" atau "HH:mm:ss" → jam dinding pada tanggal anchor 2000-01-01.
func parseTOD(s string) (time.Time, error) {
	if t, err := time.Parse("15:04", s); err == nil {
		return time.Date(2000, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC), nil
	}
	if t, err := time.Parse("15:04:05", s); err == nil {
		return time.Date(2000, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("invalid time-of-day format: %q", s)
}

// combineDateTOD menempelkan jam dinding ke tanggal konkret.
func combineDateTOD(d, tod time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC)
}

/* =========================
   Working date enumerator
========================= */

// EnumerateWorkingDates meluas jendela aktif + mask hari kerja + daftar libur
// menjadi deretan tanggal kalender terurut naik (inklusif kedua ujung).
// activeFrom > activeTo atau workingDays kosong → slice kosong, bukan error;
// validasi konfigurasi dilakukan di layer atas.
func EnumerateWorkingDates(activeFrom, activeTo time.Time, workingDays []int, excluded []time.Time) []time.Time {
	from := startOfDay(activeFrom)
	to := startOfDay(activeTo)
	if to.Before(from) || len(workingDays) == 0 {
		return nil
	}

	daySet := make(map[int]struct{}, len(workingDays))
	for _, d := range workingDays {
		daySet[d] = struct{}{}
	}
	exSet := make(map[string]struct{}, len(excluded))
	for _, e := range excluded {
		exSet[dateKey(e)] = struct{}{}
	}

	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if _, ok := daySet[isoWeekday(d)]; !ok {
			continue
		}
		if _, ok := exSet[dateKey(d)]; ok {
			continue
		}
		out = append(out, d)
	}
	return out
}
