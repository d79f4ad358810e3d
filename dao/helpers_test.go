package dao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAsStringSlice(t *testing.T) {
	assert.Nil(t, asStringSlice(nil))
	assert.Nil(t, asStringSlice("not a slice"))
	assert.Equal(t, []string{"a", "b"}, asStringSlice([]interface{}{"a", "b"}))
	// Non-string members are dropped rather than panicking.
	assert.Equal(t, []string{"a"}, asStringSlice([]interface{}{"a", 42}))
}

func TestAsInt64(t *testing.T) {
	assert.Equal(t, int64(3), asInt64(int64(3)))
	assert.Equal(t, int64(3), asInt64(float64(3)))
	assert.Equal(t, int64(0), asInt64("3"))
}

func TestAsTime(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, ts, asTime(ts.Format(time.RFC3339)))
	assert.Equal(t, ts, asTime(ts))
	assert.True(t, asTime("garbage").IsZero())
}
