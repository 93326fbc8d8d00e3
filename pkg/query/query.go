// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-style URL query and form values.
package query

import (
	"strings"
)

// StringSlice parses a single comma-separated value into a trimmed slice of
// strings. Empty entries are dropped and order is preserved.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	return Trimmed(strings.Split(val, ","))
}

// Trimmed trims every entry and drops the empty ones. Entries are never
// split further, so a value containing a comma stays whole.
func Trimmed(vals []string) []string {
	var res []string
	for _, v := range vals {
		if clean := strings.TrimSpace(v); clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
