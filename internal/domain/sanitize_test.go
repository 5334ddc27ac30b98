package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeWeight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain number", "100", "100"},
		{"decimal kept", "62.5", "62.5"},
		{"comma becomes dot", "62,5", "62.5"},
		{"second dot dropped", "6.2.5", "6.25"},
		{"letters dropped", "100kg", "100"},
		{"mixed garbage", "a1b2.c3", "12.3"},
		{"empty", "", ""},
		{"only letters", "abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeWeight(tt.input))
		})
	}
}

func TestSanitizeReps(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain number", "12", "12"},
		{"decimal stripped", "12.5", "125"},
		{"letters dropped", "10reps", "10"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeReps(tt.input))
		})
	}
}
