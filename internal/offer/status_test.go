package offer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/25nandu/Citimart-web-app/internal/domain"
)

func TestDeriveStatus(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	window := &domain.Offer{StartDate: start, EndDate: end}

	tests := []struct {
		name string
		now  time.Time
		want domain.OfferStatus
	}{
		{"before the window", start.Add(-time.Second), domain.OfferStatusUpcoming},
		{"exactly at start", start, domain.OfferStatusActive},
		{"mid window", start.Add(15 * 24 * time.Hour), domain.OfferStatusActive},
		{"exactly at end", end, domain.OfferStatusActive},
		{"after the window", end.Add(time.Second), domain.OfferStatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(window, tt.now))
		})
	}
}

func TestDeriveStatus_IgnoresStoredStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	stale := &domain.Offer{
		StartDate: now.Add(-48 * time.Hour),
		EndDate:   now.Add(-24 * time.Hour),
		Status:    domain.OfferStatusActive, // sweep has not caught up yet
	}

	assert.Equal(t, domain.OfferStatusExpired, DeriveStatus(stale, now))
}
