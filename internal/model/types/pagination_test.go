package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LeJxrxm/bg3-planner/internal/model/types"
)

func TestPageRequestOffset(t *testing.T) {
	tests := []struct {
		name   string
		page   int
		size   int
		offset int
	}{
		{"first page", 1, 20, 0},
		{"second page", 2, 20, 20},
		{"custom size", 3, 7, 14},
		{"single row pages", 5, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := types.PageRequest{Page: tt.page, PageSize: tt.size}
			assert.Equal(t, tt.offset, p.Offset())
			assert.Equal(t, tt.size, p.Limit())
		})
	}
}
