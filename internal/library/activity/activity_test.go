// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package activity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/library/activity"
)

func day(offset int) time.Time {
	base := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestStreaks(t *testing.T) {
	now := day(0)

	tests := []struct {
		name        string
		days        []time.Time
		wantCurrent int
		wantLongest int
	}{
		{"no activity", nil, 0, 0},
		{"only today", []time.Time{day(0)}, 1, 1},
		{"ends yesterday still counts", []time.Time{day(-3), day(-2), day(-1)}, 3, 3},
		{"ended two days ago", []time.Time{day(-4), day(-3), day(-2)}, 0, 3},
		{"gap breaks the current run", []time.Time{day(-6), day(-5), day(-4), day(-3), day(-1), day(0)}, 2, 4},
		{"duplicates collapse", []time.Time{day(0), day(0), day(-1), day(-1)}, 2, 2},
		{"unsorted input", []time.Time{day(0), day(-2), day(-1)}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := activity.Streaks(tt.days, now)
			assert.Equal(t, tt.wantCurrent, current)
			assert.Equal(t, tt.wantLongest, longest)
		})
	}
}

func TestStreaks_UsesUTCDays(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2026, 3, 10, 1, 0, 0, 0, tokyo) // 2026-03-09 16:00 UTC

	current, _ := activity.Streaks([]time.Time{time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)}, now)
	assert.Equal(t, 1, current)
}

func TestStreaks_CrossesMonthBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	days := []time.Time{
		time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	current, longest := activity.Streaks(days, now)
	assert.Equal(t, 3, current)
	assert.Equal(t, 3, longest)
}
