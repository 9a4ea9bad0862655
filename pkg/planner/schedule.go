package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/stockbuddy/stockbuddy/pkg/models"
)

// Lexical schedule extraction. These rules run before any LLM call so
// the schedule-confirmation pause never depends on model output.
var (
	intervalMinutesRe = regexp.MustCompile(`(?i)every\s+(\d+)\s*(?:minutes?|mins?)`)
	intervalHoursRe   = regexp.MustCompile(`(?i)every\s+(\d+)\s*hours?`)
	everyHourRe       = regexp.MustCompile(`(?i)every\s+hour`)
	dailyTimeRe       = regexp.MustCompile(`(?i)(?:daily\s+at|every\s+day\s+at|each\s+day\s+at)\s+([01]?\d|2[0-3]):([0-5]\d)`)

	cjkIntervalMinutesRe = regexp.MustCompile(`每\s*(\d+)\s*分钟`)
	cjkIntervalHoursRe   = regexp.MustCompile(`每\s*(\d+)\s*小时`)
	cjkDailyTimeRe       = regexp.MustCompile(`每天\s*([01]?\d|2[0-3])[:：]([0-5]\d)`)
)

// confirmationTokens mark an inline or replied schedule confirmation.
var confirmationTokens = []string{
	"yes", "ok", "okay", "confirm", "confirmed", "proceed",
	"确认", "已确认", "好的", "好", "可以", "行",
}

// ExtractSchedule finds an explicit schedule in the query. Returns nil
// when none is present. Daily time wins over interval when both appear.
func ExtractSchedule(query string) *models.ScheduleConfig {
	if m := dailyTimeRe.FindStringSubmatch(query); m != nil {
		return &models.ScheduleConfig{DailyTime: normalizeDailyTime(m[1], m[2])}
	}
	if m := cjkDailyTimeRe.FindStringSubmatch(query); m != nil {
		return &models.ScheduleConfig{DailyTime: normalizeDailyTime(m[1], m[2])}
	}
	if m := intervalMinutesRe.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return &models.ScheduleConfig{IntervalMinutes: n}
		}
	}
	if m := cjkIntervalMinutesRe.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return &models.ScheduleConfig{IntervalMinutes: n}
		}
	}
	if m := intervalHoursRe.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return &models.ScheduleConfig{IntervalMinutes: n * 60}
		}
	}
	if m := cjkIntervalHoursRe.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return &models.ScheduleConfig{IntervalMinutes: n * 60}
		}
	}
	if everyHourRe.MatchString(query) {
		return &models.ScheduleConfig{IntervalMinutes: 60}
	}
	return nil
}

// HasConfirmationToken reports whether the text contains an explicit
// schedule confirmation.
func HasConfirmationToken(text string) bool {
	lower := strings.ToLower(text)
	for _, token := range confirmationTokens {
		if isASCII(token) {
			if containsWord(lower, token) {
				return true
			}
		} else if strings.Contains(text, token) {
			return true
		}
	}
	return false
}

// StripSchedulePhrases removes the matched schedule wording so a
// recurring task's query reads as a single-execution instruction.
func StripSchedulePhrases(query string) string {
	for _, re := range []*regexp.Regexp{
		dailyTimeRe, cjkDailyTimeRe,
		intervalMinutesRe, cjkIntervalMinutesRe,
		intervalHoursRe, cjkIntervalHoursRe, everyHourRe,
	} {
		query = re.ReplaceAllString(query, "")
	}
	return strings.Join(strings.Fields(query), " ")
}

func normalizeDailyTime(hour, minute string) string {
	if len(hour) == 1 {
		hour = "0" + hour
	}
	return fmt.Sprintf("%s:%s", hour, minute)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// containsWord matches token as a whole lowercase word.
func containsWord(lower, token string) bool {
	idx := 0
	for {
		i := strings.Index(lower[idx:], token)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(token)
		beforeOK := start == 0 || !isWordByte(lower[start-1])
		afterOK := end == len(lower) || !isWordByte(lower[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
