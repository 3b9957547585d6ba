package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{name: "few pages", current: 2, total: 3, want: []int{1, 2, 3}},
		{name: "exactly seven", current: 7, total: 7, want: []int{1, 2, 3, 4, 5, 6, 7}},
		{name: "near start", current: 4, total: 10, want: []int{1, 2, 3, 4, 5, 6, 7}},
		{name: "middle", current: 5, total: 10, want: []int{2, 3, 4, 5, 6, 7, 8}},
		{name: "near end", current: 9, total: 10, want: []int{4, 5, 6, 7, 8, 9, 10}},
		{name: "last page", current: 10, total: 10, want: []int{4, 5, 6, 7, 8, 9, 10}},
		{name: "single page", current: 1, total: 1, want: []int{1}},
		{name: "no pages", current: 1, total: 0, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageWindow(tt.current, tt.total))
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 1, ClampPage(-4, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
	assert.Equal(t, 5, ClampPage(9, 5))
	assert.Equal(t, 1, ClampPage(2, 0))
}

func TestRange(t *testing.T) {
	from, to := Range(1, 25, 57)
	assert.Equal(t, 1, from)
	assert.Equal(t, 25, to)

	from, to = Range(3, 25, 57)
	assert.Equal(t, 51, from)
	assert.Equal(t, 57, to)

	from, to = Range(4, 25, 57)
	assert.Zero(t, from)
	assert.Zero(t, to)

	from, to = Range(1, 25, 0)
	assert.Zero(t, from)
	assert.Zero(t, to)
}
