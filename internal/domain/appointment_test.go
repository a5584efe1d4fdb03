package domain

import (
	"testing"
	"time"
)

func TestAppointmentOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	appt := &Appointment{
		StartTime: base,
		EndTime:   base.Add(time.Hour),
	}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical window", base, base.Add(time.Hour), true},
		{"starts inside", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"ends inside", base.Add(-30 * time.Minute), base.Add(30 * time.Minute), true},
		{"contains", base.Add(-time.Hour), base.Add(2 * time.Hour), true},
		{"contained", base.Add(15 * time.Minute), base.Add(45 * time.Minute), true},
		{"back to back after", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"back to back before", base.Add(-time.Hour), base, false},
		{"disjoint", base.Add(3 * time.Hour), base.Add(4 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := appt.Overlaps(tc.start, tc.end); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestAppointmentStatus(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusBooked, StatusCanceled, StatusCompleted} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if AppointmentStatus("rescheduled").Valid() {
		t.Error("expected unknown status to be invalid")
	}

	if !StatusBooked.Blocks() || !StatusCompleted.Blocks() {
		t.Error("booked and completed must block the schedule")
	}
	if StatusCanceled.Blocks() {
		t.Error("canceled must not block the schedule")
	}
}
