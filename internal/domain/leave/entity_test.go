package leave

import (
	"testing"
	"time"
)

func TestDaysInclusive(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad test date %q: %v", s, err)
		}
		return d
	}

	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2024-03-11", "2024-03-11", 1},
		{"two days", "2024-03-11", "2024-03-12", 2},
		{"full week", "2024-03-11", "2024-03-17", 7},
		{"across month boundary", "2024-01-30", "2024-02-02", 4},
		{"across leap day", "2024-02-28", "2024-03-01", 3},
		{"across year boundary", "2023-12-30", "2024-01-02", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DaysInclusive(day(c.start), day(c.end))
			if got != c.want {
				t.Errorf("DaysInclusive(%s, %s) = %d, want %d", c.start, c.end, got, c.want)
			}
		})
	}
}

func TestDaysInclusiveIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 3, 11, 23, 50, 0, 0, time.UTC)
	end := time.Date(2024, 3, 12, 0, 10, 0, 0, time.UTC)
	if got := DaysInclusive(start, end); got != 2 {
		t.Errorf("DaysInclusive across midnight = %d, want 2", got)
	}
}

func TestIsPending(t *testing.T) {
	for status, want := range map[Status]bool{
		StatusPending:  true,
		StatusApproved: false,
		StatusRejected: false,
	} {
		l := LeaveRequest{Status: status}
		if got := l.IsPending(); got != want {
			t.Errorf("IsPending() with status %q = %v, want %v", status, got, want)
		}
	}
}
