package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Baghdad")
	if err != nil {
		t.Fatal(err)
	}

	ref := time.Date(2024, 3, 15, 23, 45, 12, 0, loc)
	start := BeginningOfDay(ref)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location(), "boundary must use the reference's local calendar date")
}

func TestDayRange(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Baghdad")
	if err != nil {
		t.Fatal(err)
	}

	ref := time.Date(2024, 3, 15, 10, 30, 0, 0, loc)
	start, end := DayRange(ref)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, loc), end)
}

func TestDayRangeIsHalfOpen(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Baghdad")
	if err != nil {
		t.Fatal(err)
	}
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)
	start, end := DayRange(ref)

	assert.False(t, start.After(ref), "the reference instant sits inside its own window")
	assert.True(t, ref.Before(end))
	assert.Equal(t, start, BeginningOfDay(end.Add(-time.Nanosecond)), "last nanosecond still belongs to the day")
	assert.NotEqual(t, start, BeginningOfDay(end), "the end boundary belongs to the next day")
}
