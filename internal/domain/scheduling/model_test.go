package scheduling

import (
	"testing"
	"time"
)

func TestLayout(t *testing.T) {
	loc := time.UTC
	a := &Appointment{
		Start: time.Date(2024, 3, 15, 9, 30, 0, 0, loc),
		End:   time.Date(2024, 3, 15, 10, 15, 0, 0, loc),
	}

	l := a.Layout(8, loc)
	if l.HourOffset != 1.5 {
		t.Errorf("expected offset 1.5 hours from 08:00, got %v", l.HourOffset)
	}
	if l.HeightHours != 0.75 {
		t.Errorf("expected height 0.75 hours for 45 minutes, got %v", l.HeightHours)
	}
}

func TestLayout_AtDayStart(t *testing.T) {
	loc := time.UTC
	a := &Appointment{
		Start: time.Date(2024, 3, 15, 8, 0, 0, 0, loc),
		End:   time.Date(2024, 3, 15, 8, 30, 0, 0, loc),
	}

	l := a.Layout(8, loc)
	if l.HourOffset != 0 {
		t.Errorf("expected zero offset at day start, got %v", l.HourOffset)
	}
	if l.HeightHours != 0.5 {
		t.Errorf("expected height 0.5 hours, got %v", l.HeightHours)
	}
}

func TestSameDay(t *testing.T) {
	loc := time.UTC
	a := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	b := time.Date(2024, 3, 15, 23, 59, 59, 0, loc)
	if !SameDay(a, b, loc) {
		t.Error("expected 00:00 and 23:59 of the same date to match")
	}

	c := time.Date(2024, 3, 16, 0, 0, 0, 0, loc)
	if SameDay(b, c, loc) {
		t.Error("expected 23:59 and next-day 00:00 not to match")
	}
}

func TestSameDay_TimezoneBoundary(t *testing.T) {
	mx, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2024-03-16 02:00 UTC is still 2024-03-15 in Mexico City (UTC-6).
	utcInstant := time.Date(2024, 3, 16, 2, 0, 0, 0, time.UTC)
	localDay := time.Date(2024, 3, 15, 12, 0, 0, 0, mx)

	if !SameDay(utcInstant, localDay, mx) {
		t.Error("expected instants to share the clinic's calendar day")
	}
	if SameDay(utcInstant, localDay, time.UTC) {
		t.Error("expected instants to differ when compared in UTC")
	}
}

func TestAppointmentDuration(t *testing.T) {
	a := &Appointment{
		Start: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 15, 9, 45, 0, 0, time.UTC),
	}
	if a.Duration() != 45*time.Minute {
		t.Errorf("expected 45m, got %s", a.Duration())
	}
}
