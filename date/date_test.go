package date

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2025, time.January, 32)
	want := New(2025, time.February, 1)
	if got != want {
		t.Errorf("New(2025, January, 32) = %s, want %s", got, want)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "not-a-date", wantErr: true},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error, got %s", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestAddAcrossMonth(t *testing.T) {
	d := New(2025, time.January, 31)
	if got, want := d.Add(1), New(2025, time.February, 1); got != want {
		t.Errorf("Add(1) = %s, want %s", got, want)
	}
	if got, want := d.Add(-31), New(2024, time.December, 31); got != want {
		t.Errorf("Add(-31) = %s, want %s", got, want)
	}
}
