// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package activity keeps a per-day log of reading sessions.

Every progress report adds a row (or bumps the existing row) for the UTC
calendar day it happened on. The log exists to answer streak questions:
"how many consecutive days has this reader opened a book".
*/
package activity

import (
	"context"
	"slices"
	"time"
)

// dateLayout keys calendar days.
const dateLayout = "2006-01-02"

// Repository persists reading days.
type Repository interface {
	// Record adds minutes to the user's entry for the UTC day of at.
	Record(context context.Context, userID, bookID string, minutes int, at time.Time) error

	// Days returns every day the user reported progress on, ascending.
	Days(context context.Context, userID string) ([]time.Time, error)
}

// Streaks returns the current and longest runs of consecutive days.
//
// The current streak only counts if the most recent day is today or
// yesterday relative to now (both in UTC). Duplicate days are ignored.
func Streaks(days []time.Time, now time.Time) (current, longest int) {
	if len(days) == 0 {
		return 0, 0
	}

	set := make(map[string]bool, len(days))
	keys := make([]string, 0, len(days))
	for _, day := range days {
		key := day.UTC().Format(dateLayout)
		if !set[key] {
			set[key] = true
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	longest, run := 1, 1
	for i := 1; i < len(keys); i++ {
		previous, _ := time.Parse(dateLayout, keys[i-1])
		currentDay, _ := time.Parse(dateLayout, keys[i])

		if previous.AddDate(0, 0, 1).Equal(currentDay) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}

	today := now.UTC().Format(dateLayout)
	yesterday := now.UTC().AddDate(0, 0, -1).Format(dateLayout)
	last := keys[len(keys)-1]
	if last != today && last != yesterday {
		return 0, longest
	}

	check, _ := time.Parse(dateLayout, last)
	for set[check.Format(dateLayout)] {
		current++
		check = check.AddDate(0, 0, -1)
	}

	return current, longest
}
