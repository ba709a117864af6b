package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"first.last@sub.example.com", true},
		{"", false},
		{"plain", false},
		{"missing@tld", false},
		{"spaces in@example.com", false},
		{"@example.com", false},
		{"a@.com", false},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, isValidEmail(tc.email), "email %q", tc.email)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month, year, want int
	}{
		{1, 2023, 31},
		{4, 2023, 30},
		{2, 2023, 28},
		{2, 2024, 29},   // leap year
		{2, 2000, 29},   // divisible by 400
		{2, 1900, 28},   // divisible by 100 but not 400
		{12, 1999, 31},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, daysInMonth(tc.month, tc.year), "month %d year %d", tc.month, tc.year)
	}
}

func TestDigitsOnly(t *testing.T) {
	require.Equal(t, "29", digitsOnly(" 29 "))
	require.Equal(t, "1995", digitsOnly("19-95"))
	require.Equal(t, "", digitsOnly("abc"))
}
