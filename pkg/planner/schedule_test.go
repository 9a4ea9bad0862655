package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSchedule(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		interval int
		daily    string
	}{
		{"interval minutes", "check Tesla every 30 minutes", 30, ""},
		{"interval min short", "ping every 5 min", 5, ""},
		{"interval hours", "update me every 2 hours", 120, ""},
		{"every hour", "monitor AAPL every hour", 60, ""},
		{"daily at", "Monitor Apple earnings daily at 09:00", 0, "09:00"},
		{"every day at", "summary every day at 9:30", 0, "09:30"},
		{"cjk minutes", "每30分钟提醒我特斯拉股价", 30, ""},
		{"cjk daily", "每天 09:00 推送苹果新闻", 0, "09:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := ExtractSchedule(tt.query)
			require.NotNil(t, schedule)
			assert.Equal(t, tt.interval, schedule.IntervalMinutes)
			assert.Equal(t, tt.daily, schedule.DailyTime)
			require.NoError(t, schedule.Validate())
		})
	}
}

func TestExtractSchedule_NoSchedule(t *testing.T) {
	assert.Nil(t, ExtractSchedule("What is the latest Tesla news?"))
	assert.Nil(t, ExtractSchedule("give me a daily summary"))
}

func TestHasConfirmationToken(t *testing.T) {
	assert.True(t, HasConfirmationToken("yes"))
	assert.True(t, HasConfirmationToken("ok, go ahead"))
	assert.True(t, HasConfirmationToken("confirm setting daily at 09:00"))
	assert.True(t, HasConfirmationToken("确认"))
	assert.True(t, HasConfirmationToken("好的"))

	// Word boundaries: "broker" contains "ok" but is not a confirmation.
	assert.False(t, HasConfirmationToken("talk to my broker"))
	assert.False(t, HasConfirmationToken("monitor tesla daily at 09:00"))
}

func TestStripSchedulePhrases(t *testing.T) {
	assert.Equal(t, "Monitor Apple earnings",
		StripSchedulePhrases("Monitor Apple earnings daily at 09:00"))
	assert.Equal(t, "check Tesla price",
		StripSchedulePhrases("check Tesla price every 30 minutes"))
}

func TestComplexityKeywords(t *testing.T) {
	english, cjk := ComplexityKeywordCounts("Should I invest in OpenAI? Any recommendation?")
	assert.GreaterOrEqual(t, english, 2)
	assert.Zero(t, cjk)

	assert.True(t, FastTrackToPlanner("Should I invest in OpenAI?"))
	assert.True(t, FastTrackToPlanner("AAPL vs MSFT"))
	assert.True(t, FastTrackToPlanner("分析一下腾讯值得买吗"))
	assert.False(t, FastTrackToPlanner("What is 2+2?"))
	assert.False(t, FastTrackToPlanner("Latest Tesla news"))

	assert.True(t, LooksLikeInvestmentQuery("is NVDA worth holding"))
	assert.False(t, LooksLikeInvestmentQuery("hello there"))
}
