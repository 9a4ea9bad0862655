package triage

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbuddy/stockbuddy/pkg/models"
	"github.com/stockbuddy/stockbuddy/pkg/remote"
)

type fakeLLM struct {
	response string
	err      error
	lastUser string
}

func (f *fakeLLM) Invoke(ctx context.Context, system, user string) (string, error) {
	f.lastUser = user
	return f.response, f.err
}

type stubAgent struct{}

func (stubAgent) SendMessage(ctx context.Context, query, conversationID string, meta *remote.CallMetadata) (<-chan *remote.Event, error) {
	ch := make(chan *remote.Event)
	close(ch)
	return ch, nil
}
func (stubAgent) GetCard(ctx context.Context) (*remote.CapabilityCard, error) {
	return &remote.CapabilityCard{}, nil
}
func (stubAgent) Cancel(ctx context.Context, remoteTaskID string) error { return nil }
func (stubAgent) Close() error                                          { return nil }

func newTestRegistry(names ...string) *remote.Registry {
	reg := remote.NewRegistry(slog.Default())
	for _, name := range names {
		reg.Register(name, stubAgent{})
	}
	return reg
}

func TestTriager_DirectAnswer(t *testing.T) {
	fake := &fakeLLM{response: `{"decision":"answer","answer_content":"4","reason":"simple math"}`}
	triager := NewTriager(fake, newTestRegistry("NewsAgent"), slog.Default())

	outcome := triager.Triage(context.Background(), &models.UserInput{Query: "What is 2+2?"})
	assert.Equal(t, models.TriageDecisionAnswer, outcome.Decision)
	assert.Equal(t, "4", outcome.AnswerContent)
	assert.Equal(t, "What is 2+2?", fake.lastUser)
}

func TestTriager_HandoffWithRecommendations(t *testing.T) {
	fake := &fakeLLM{response: `{
		"decision": "handoff_to_planner",
		"enriched_query": "Find latest Tesla news",
		"recommended_agents": ["NewsAgent", "GhostAgent"],
		"reason": "needs live news"
	}`}
	triager := NewTriager(fake, newTestRegistry("NewsAgent", "ResearchAgent"), slog.Default())

	outcome := triager.Triage(context.Background(), &models.UserInput{Query: "Latest Tesla news"})
	require.Equal(t, models.TriageDecisionHandoff, outcome.Decision)
	assert.Equal(t, "Find latest Tesla news", outcome.EnrichedQuery)
	// Unknown agents are filtered out.
	assert.Equal(t, []string{"NewsAgent"}, outcome.RecommendedAgents)
}

func TestTriager_MarkdownFencedOutput(t *testing.T) {
	fake := &fakeLLM{response: "```json\n{\"decision\":\"answer\",\"answer_content\":\"ok\"}\n```"}
	triager := NewTriager(fake, newTestRegistry("NewsAgent"), slog.Default())

	outcome := triager.Triage(context.Background(), &models.UserInput{Query: "hi"})
	assert.Equal(t, models.TriageDecisionAnswer, outcome.Decision)
	assert.Equal(t, "ok", outcome.AnswerContent)
}

func TestTriager_MalformedOutputFallsBackToAnswer(t *testing.T) {
	fake := &fakeLLM{response: "I think you should hand this off."}
	triager := NewTriager(fake, newTestRegistry("NewsAgent"), slog.Default())

	outcome := triager.Triage(context.Background(), &models.UserInput{Query: "anything"})
	assert.Equal(t, models.TriageDecisionAnswer, outcome.Decision)
	assert.NotEmpty(t, outcome.AnswerContent)
}

func TestTriager_LLMErrorFallsBackToAnswer(t *testing.T) {
	fake := &fakeLLM{err: errors.New("connection refused")}
	triager := NewTriager(fake, newTestRegistry("NewsAgent"), slog.Default())

	outcome := triager.Triage(context.Background(), &models.UserInput{Query: "anything"})
	assert.Equal(t, models.TriageDecisionAnswer, outcome.Decision)
	assert.Contains(t, outcome.AnswerContent, "try again")
}

func TestTriager_UnknownDecisionRejected(t *testing.T) {
	fake := &fakeLLM{response: `{"decision":"escalate"}`}
	triager := NewTriager(fake, newTestRegistry("NewsAgent"), slog.Default())

	outcome := triager.Triage(context.Background(), &models.UserInput{Query: "anything"})
	assert.Equal(t, models.TriageDecisionAnswer, outcome.Decision)
}
