package dateutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToISO(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expected   string
		expectedOk bool
	}{
		{"slash separated", "12/03/2024", "2024-03-12", true},
		{"dash separated", "12-03-2024", "2024-03-12", true},
		{"dot separated", "12.03.2024", "2024-03-12", true},
		{"single digit day and month", "1/2/2024", "2024-02-01", true},
		{"two digit year below pivot", "15/06/23", "2023-06-15", true},
		{"two digit year above pivot", "15/06/75", "1975-06-15", true},
		{"pivot boundary goes forward", "01/01/50", "2050-01-01", true},
		{"just above pivot goes back", "01/01/51", "1951-01-01", true},
		{"already ISO passes through", "2024-03-12", "2024-03-12", true},
		{"impossible day rejected", "32/01/2024", "", false},
		{"impossible month rejected", "12/13/2024", "", false},
		{"free text rejected", "not a date", "", false},
		{"empty string rejected", "", "", false},
		{"bare number rejected", "45000", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ToISO(tc.input)
			assert.Equal(t, tc.expectedOk, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestExpandTwoDigitYear(t *testing.T) {
	assert.Equal(t, 2023, ExpandTwoDigitYear(23))
	assert.Equal(t, 1975, ExpandTwoDigitYear(75))
	assert.Equal(t, 2050, ExpandTwoDigitYear(50))
	assert.Equal(t, 1951, ExpandTwoDigitYear(51))
	assert.Equal(t, 2000, ExpandTwoDigitYear(0))
}

func TestSerialToISO(t *testing.T) {
	tests := []struct {
		name     string
		serial   float64
		expected string
	}{
		{"known serial", 45000, "2023-03-15"},
		{"unix epoch", 25569, "1970-01-01"},
		{"start of 2023", 44927, "2023-01-01"},
		{"fractional time of day ignored", 45000.75, "2023-03-15"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SerialToISO(tc.serial))
		})
	}
}

func TestSerialToISOIsReproducible(t *testing.T) {
	first := SerialToISO(45000)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SerialToISO(45000))
	}
}

func TestLooksLikeSerial(t *testing.T) {
	assert.True(t, LooksLikeSerial(30000))
	assert.True(t, LooksLikeSerial(45000))
	assert.True(t, LooksLikeSerial(50000))
	assert.False(t, LooksLikeSerial(29999.9))
	assert.False(t, LooksLikeSerial(50000.1))
	assert.False(t, LooksLikeSerial(1500)) // plausible amount, not a date
	assert.False(t, LooksLikeSerial(-45000))
}

func TestIsDMYString(t *testing.T) {
	assert.True(t, IsDMYString("12/03/2024"))
	assert.True(t, IsDMYString("1.2.24"))
	assert.False(t, IsDMYString("2024-03-12")) // ISO is handled separately
	assert.False(t, IsDMYString("12/03/2024 extra"))
	assert.False(t, IsDMYString("tuesday"))
}
