// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSlice(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"scifi", []string{"scifi"}},
		{" scifi , classic ,, ", []string{"scifi", "classic"}},
		{",,,", nil},
		{"b,a,b", []string{"b", "a", "b"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StringSlice(tt.in), "input %q", tt.in)
	}
}

func TestTrimmed(t *testing.T) {
	assert.Equal(t, []string{"sci, fi", "classic"}, Trimmed([]string{" sci, fi ", "", "  ", "classic"}))
	assert.Nil(t, Trimmed(nil))
}
