package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReveal(t *testing.T) {
	list := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		visible  int
		want     []int
		wantMore bool
	}{
		{"prefix", 3, []int{1, 2, 3}, true},
		{"exact", 5, []int{1, 2, 3, 4, 5}, false},
		{"beyond", 9, []int{1, 2, 3, 4, 5}, false},
		{"zero", 0, []int{}, true},
		{"negative", -1, []int{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, more := Reveal(list, tt.visible)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMore, more)
		})
	}
}

func TestReveal_EmptyList(t *testing.T) {
	got, more := Reveal([]int{}, 6)

	assert.Empty(t, got)
	assert.False(t, more)
}

func TestReveal_SliceCannotGrowIntoHidden(t *testing.T) {
	list := []int{1, 2, 3, 4}
	got, _ := Reveal(list, 2)

	got = append(got, 99)

	assert.Equal(t, []int{1, 2, 3, 4}, list)
	assert.Equal(t, []int{1, 2, 99}, got)
}

func TestAdvance(t *testing.T) {
	assert.Equal(t, 9, Advance(6, 3, 20))
	assert.Equal(t, 20, Advance(18, 6, 20))
	assert.Equal(t, 20, Advance(20, 6, 20))
}

func TestToggle(t *testing.T) {
	assert.Equal(t, 12, Toggle(6, 6, 12))
	assert.Equal(t, 6, Toggle(12, 6, 12))
	assert.Equal(t, 4, Toggle(4, 6, 4))
}
