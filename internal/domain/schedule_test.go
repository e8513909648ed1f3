package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingHours_Validate(t *testing.T) {
	tests := []struct {
		name    string
		wh      WorkingHours
		wantErr error
	}{
		{
			name: "valid window",
			wh:   WorkingHours{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
		},
		{
			name: "window ending at midnight",
			wh:   WorkingHours{DayOfWeek: 6, StartTime: "22:00", EndTime: "24:00"},
		},
		{
			name:    "day of week too large",
			wh:      WorkingHours{DayOfWeek: 7, StartTime: "09:00", EndTime: "18:00"},
			wantErr: ErrInvalidDayOfWeek,
		},
		{
			name:    "negative day of week",
			wh:      WorkingHours{DayOfWeek: -1, StartTime: "09:00", EndTime: "18:00"},
			wantErr: ErrInvalidDayOfWeek,
		},
		{
			name:    "start equals end",
			wh:      WorkingHours{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"},
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "start after end",
			wh:      WorkingHours{DayOfWeek: 1, StartTime: "18:00", EndTime: "09:00"},
			wantErr: ErrInvalidWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wh.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateWeeklyPattern(t *testing.T) {
	valid := []WorkingHours{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
		{DayOfWeek: 2, StartTime: "10:00", EndTime: "19:00"},
	}
	assert.NoError(t, ValidateWeeklyPattern(valid))

	duplicated := []WorkingHours{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 1, StartTime: "13:00", EndTime: "18:00"},
	}
	assert.ErrorIs(t, ValidateWeeklyPattern(duplicated), ErrDuplicateDayOfWeek)

	assert.NoError(t, ValidateWeeklyPattern(nil))
}

func TestSpecialWorkday_Validate(t *testing.T) {
	valid := SpecialWorkday{Date: "2026-09-23", StartTime: "10:00", EndTime: "15:00"}
	assert.NoError(t, valid.Validate())

	badDate := SpecialWorkday{Date: "23/09/2026", StartTime: "10:00", EndTime: "15:00"}
	assert.ErrorIs(t, badDate.Validate(), ErrInvalidDate)

	inverted := SpecialWorkday{Date: "2026-09-23", StartTime: "15:00", EndTime: "10:00"}
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidWindow)
}

func TestSchedule_Validate(t *testing.T) {
	schedule := &Schedule{
		StaffID: 1,
		WorkingHours: []WorkingHours{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
		},
		SpecialHolidays: []string{"2026-12-31"},
		SpecialWorkdays: []SpecialWorkday{
			{Date: "2026-09-23", StartTime: "10:00", EndTime: "15:00"},
		},
	}
	require.NoError(t, schedule.Validate())

	schedule.SpecialHolidays = []string{"not-a-date"}
	assert.ErrorIs(t, schedule.Validate(), ErrInvalidDate)
}

func TestSchedule_Lookups(t *testing.T) {
	schedule := &Schedule{
		WorkingHours: []WorkingHours{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		},
		SpecialHolidays: []string{"2026-09-21"},
		SpecialWorkdays: []SpecialWorkday{
			{Date: "2026-09-23", StartTime: "10:00", EndTime: "15:00"},
		},
	}

	assert.True(t, schedule.IsHoliday("2026-09-21"))
	assert.False(t, schedule.IsHoliday("2026-09-22"))

	override := schedule.WorkdayOverride("2026-09-23")
	require.NotNil(t, override)
	assert.Equal(t, "10:00", override.StartTime.String())
	assert.Nil(t, schedule.WorkdayOverride("2026-09-24"))

	hours := schedule.WorkingHoursFor(1)
	require.NotNil(t, hours)
	assert.Equal(t, "09:00", hours.StartTime.String())
	assert.Nil(t, schedule.WorkingHoursFor(0))
}
