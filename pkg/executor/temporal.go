package executor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stockbuddy/stockbuddy/pkg/models"
)

// NextExecutionDelay returns how long to wait before the next recurring
// fire. ok=false means the schedule yields no further executions and the
// recurrence ends.
//
// Interval schedules fire every N minutes. Daily-time schedules fire at
// HH:MM in loc; a time already past today means tomorrow's occurrence.
func NextExecutionDelay(cfg *models.ScheduleConfig, loc *time.Location, now time.Time) (time.Duration, bool) {
	if cfg == nil {
		return 0, false
	}
	if cfg.IntervalMinutes > 0 {
		return time.Duration(cfg.IntervalMinutes) * time.Minute, true
	}
	if cfg.DailyTime == "" {
		return 0, false
	}

	hour, minute, err := parseDailyTime(cfg.DailyTime)
	if err != nil {
		return 0, false
	}
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local), true
}

func parseDailyTime(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid daily time %q", s)
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid daily time hour %q", s)
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid daily time minute %q", s)
	}
	return hour, minute, nil
}
