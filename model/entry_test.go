package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func three() []Entry {
	return []Entry{
		{Command: "one", Category: "a"},
		{Command: "two", Category: "b"},
		{Command: "three", Category: "c"},
	}
}

func TestAt(t *testing.T) {
	entries := three()

	e, ok := At(entries, 1)
	assert.True(t, ok)
	assert.Equal(t, "one", e.Command)

	e, ok = At(entries, 3)
	assert.True(t, ok)
	assert.Equal(t, "three", e.Command)

	for _, idx := range []int{0, -1, 4, 99} {
		_, ok := At(entries, idx)
		assert.False(t, ok, "index %d", idx)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		want    []string
		removed string
		ok      bool
	}{
		{"first", 1, []string{"two", "three"}, "one", true},
		{"middle shifts later entries", 2, []string{"one", "three"}, "two", true},
		{"last", 3, []string{"one", "two"}, "three", true},
		{"zero", 0, []string{"one", "two", "three"}, "", false},
		{"past end", 4, []string{"one", "two", "three"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := three()
			out, removed, ok := Remove(in, tt.index)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.removed, removed.Command)

			var got []string
			for _, e := range out {
				got = append(got, e.Command)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, three(), in, "input must not change")
		})
	}
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 2, IndexOf(three(), "two"))
	assert.Equal(t, 0, IndexOf(three(), "four"))
	assert.Equal(t, 0, IndexOf(nil, "one"))
}
