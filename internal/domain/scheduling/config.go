package scheduling

import "time"

// SchedulingConfig is a frozen value passed into the Assembler once;
// nothing in this package reads ambient config after construction.
type SchedulingConfig struct {
	Timezone                 string
	FairnessWindowDays        int
	ATMRestRuleEnabled        bool
	ATMCooldownDays           int
	SysAidWeekDays            map[time.Weekday]bool
	SysAidRequiredOfficeDays  map[time.Weekday]bool
	DefaultAggressiveness     int
}

// DefaultSchedulingConfig returns the recognized defaults.
func DefaultSchedulingConfig() SchedulingConfig {
	return SchedulingConfig{
		Timezone:           "UTC",
		FairnessWindowDays: 90,
		ATMRestRuleEnabled: true,
		ATMCooldownDays:    2,
		SysAidWeekDays: map[time.Weekday]bool{
			time.Monday: true, time.Tuesday: true, time.Wednesday: true,
			time.Thursday: true, time.Friday: true, time.Saturday: true,
		},
		SysAidRequiredOfficeDays: map[time.Weekday]bool{
			time.Monday: true, time.Tuesday: true, time.Wednesday: true,
			time.Thursday: true, time.Friday: true,
		},
		DefaultAggressiveness: 1,
	}
}

// Location resolves the configured timezone, falling back to UTC if it
// cannot be loaded.
func (c SchedulingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
