package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "date only", input: "2014-01-01", want: time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "date and minutes", input: "2014-01-01 13:30", want: time.Date(2014, 1, 1, 13, 30, 0, 0, time.UTC)},
		{name: "date and seconds", input: "2014-01-01 13:30:05", want: time.Date(2014, 1, 1, 13, 30, 5, 0, time.UTC)},
		{name: "slashed", input: "2014/01/01", want: time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "day month year", input: "1 January 2014", want: time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "month day year", input: "January 1, 2014", want: time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "abbreviated month", input: "Jan 1, 2014", want: time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding space", input: "  2014-01-01  ", want: time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "free text", input: "the other day"},
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidDate", tt.input, err)
			}
		})
	}
}
