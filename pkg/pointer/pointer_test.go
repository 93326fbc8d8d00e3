// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/pkg/pointer"
)

func TestToAndVal(t *testing.T) {
	author := pointer.To("Frank Herbert")
	assert.Equal(t, "Frank Herbert", pointer.Val(author))

	var missing *string
	assert.Equal(t, "", pointer.Val(missing))
	assert.Equal(t, 0, pointer.Val[int](nil))
}
