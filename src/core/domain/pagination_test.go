package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        PageRequest
		wantPage  int
		wantLimit int
	}{
		{"defaults applied to zero values", PageRequest{}, 1, 20},
		{"negative page falls back", PageRequest{Page: -3, Limit: 10}, 1, 10},
		{"zero limit falls back", PageRequest{Page: 2, Limit: 0}, 2, 20},
		{"negative limit falls back", PageRequest{Page: 2, Limit: -1}, 2, 20},
		{"limit clamped to max", PageRequest{Page: 1, Limit: 500}, 1, 100},
		{"valid request untouched", PageRequest{Page: 3, Limit: 50}, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, PageRequest{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 45, PageRequest{Page: 10, Limit: 5}.Offset())
}

func TestPageRequestTotalPages(t *testing.T) {
	p := PageRequest{Page: 1, Limit: 20}

	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(1))
	assert.Equal(t, 1, p.TotalPages(20))
	assert.Equal(t, 2, p.TotalPages(21))
	assert.Equal(t, 5, p.TotalPages(100))
}
