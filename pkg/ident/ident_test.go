package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{New(), true},
		{"8f14e45f-ceea-467f-a0e6-0a1b2c3d4e5f", true},
		{"8F14E45F-CEEA-467F-A0E6-0A1B2C3D4E5F", false},
		{"8f14e45f-CEEA-467f-a0e6-0a1b2c3d4e5f", false},
		{"", false},
		{"42", false},
		{"8f14e45fceea467fa0e60a1b2c3d4e5f", false},
		{"{8f14e45f-ceea-467f-a0e6-0a1b2c3d4e5f}", false},
		{"zzzzzzzz-ceea-467f-a0e6-0a1b2c3d4e5f", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Valid(c.id), c.id)
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := New()
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}
