package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSickLeaveValidatePeriod(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	leave := &SickLeave{StartDate: day(3), EndDate: day(10)}
	assert.NoError(t, leave.ValidatePeriod())

	// single-day leave is valid
	leave = &SickLeave{StartDate: day(3), EndDate: day(3)}
	assert.NoError(t, leave.ValidatePeriod())

	leave = &SickLeave{StartDate: day(10), EndDate: day(3)}
	assert.ErrorIs(t, leave.ValidatePeriod(), ErrInvalidSickLeavePeriod)
}
