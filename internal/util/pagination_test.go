package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntDefault(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 7, ParseIntDefault("", 7))
	assert.Equal(t, 7, ParseIntDefault("x", 7))
	assert.Equal(t, -3, ParseIntDefault("-3", 7))
	assert.Equal(t, 42, ParseIntDefault("42", 7))
}

func TestParseID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want uint
		ok   bool
	}{
		{"1", 1, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := ParseID(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestCalculate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		page, size    int
		offset, limit int
	}{
		{1, 10, 0, 10},
		{3, 10, 20, 10},
		{0, 0, 0, DefaultPageSize},
		{2, 500, MaxPageSize, MaxPageSize},
		{math.MaxInt, 10, (math.MaxInt/10 - 1) * 10, 10},
		{math.MaxInt, 0, (math.MaxInt/DefaultPageSize - 1) * DefaultPageSize, DefaultPageSize},
	}
	for _, tc := range tests {
		offset, limit := Calculate(tc.page, tc.size)
		assert.GreaterOrEqual(t, offset, 0)
		assert.Equal(t, tc.offset, offset)
		assert.Equal(t, tc.limit, limit)
	}
}
