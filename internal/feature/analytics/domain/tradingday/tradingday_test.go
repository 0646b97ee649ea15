package tradingday

import (
	"testing"
	"time"
)

// TestOf はセッション境界（06:00）でのトレーディングデー割り当てを検証します。
func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "exactly 06:00 belongs to its own date",
			input:    time.Date(2024, 5, 20, 6, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "05:59:59.999 belongs to the previous date",
			input:    time.Date(2024, 5, 20, 5, 59, 59, 999_000_000, time.UTC),
			expected: time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "05:59 belongs to the previous date",
			input:    time.Date(2024, 5, 20, 5, 59, 0, 0, time.UTC),
			expected: time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "midnight belongs to the previous date",
			input:    time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "23:59 belongs to its own date",
			input:    time.Date(2024, 5, 20, 23, 59, 0, 0, time.UTC),
			expected: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "early morning of Jan 1 belongs to Dec 31",
			input:    time.Date(2025, 1, 1, 2, 30, 0, 0, time.UTC),
			expected: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Of(tt.input)
			if !got.Equal(tt.expected) {
				t.Errorf("Of(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestOf_Idempotence はトレーディングデーの正午のタイムスタンプが
// 同じトレーディングデーに割り当てられることを検証します。
func TestOf_Idempotence(t *testing.T) {
	t.Parallel()

	inputs := []time.Time{
		time.Date(2024, 5, 20, 5, 59, 0, 0, time.UTC),
		time.Date(2024, 5, 20, 6, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 3, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
	}

	for _, in := range inputs {
		day := Of(in)
		noon := day.Add(12 * time.Hour)
		if !Of(noon).Equal(day) {
			t.Errorf("Of(noon of %v) = %v, expected %v", day, Of(noon), day)
		}
	}
}

func TestSameDay(t *testing.T) {
	t.Parallel()

	a := time.Date(2024, 5, 20, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 5, 21, 4, 0, 0, 0, time.UTC) // 翌暦日の早朝は同一セッション
	c := time.Date(2024, 5, 21, 6, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("expected a and b to share a trading day")
	}
	if SameDay(b, c) {
		t.Error("expected b and c to be on different trading days")
	}
}

func TestWeekStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		day      time.Time
		expected time.Time
	}{
		{
			name:     "wednesday maps to monday",
			day:      time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monday maps to itself",
			day:      time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "sunday maps to previous monday",
			day:      time.Date(2024, 5, 26, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := WeekStart(tt.day); !got.Equal(tt.expected) {
				t.Errorf("WeekStart(%v) = %v, expected %v", tt.day, got, tt.expected)
			}
		})
	}
}

func TestMonthStart(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC)
	expected := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if got := MonthStart(day); !got.Equal(expected) {
		t.Errorf("MonthStart(%v) = %v, expected %v", day, got, expected)
	}
}
