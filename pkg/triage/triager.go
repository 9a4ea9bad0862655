// Package triage implements the SuperAgent: one LLM call deciding
// whether a query gets an immediate answer or a handoff to the planner,
// with a recommended-agent list for routing.
package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stockbuddy/stockbuddy/pkg/llm"
	"github.com/stockbuddy/stockbuddy/pkg/models"
	"github.com/stockbuddy/stockbuddy/pkg/remote"
)

// Triager is the SuperAgent front line.
type Triager struct {
	llm      llm.Client
	registry *remote.Registry
	logger   *slog.Logger
}

// NewTriager creates a triager over the given LLM and agent registry.
func NewTriager(llmClient llm.Client, registry *remote.Registry, logger *slog.Logger) *Triager {
	return &Triager{
		llm:      llmClient,
		registry: registry,
		logger:   logger.With("component", "triage"),
	}
}

// Triage runs the single triage call. It never fails: LLM errors and
// malformed output degrade to an ANSWER outcome carrying a diagnostic,
// so the session always produces something for the user.
func (t *Triager) Triage(ctx context.Context, input *models.UserInput) *models.TriageOutcome {
	system := fmt.Sprintf(superAgentInstruction, t.registry.CapabilityPrompt(ctx))

	raw, err := t.llm.Invoke(ctx, system, input.Query)
	if err != nil {
		t.logger.Error("triage LLM call failed", "error", err)
		return diagnosticOutcome(fmt.Sprintf("I could not process your request right now (%v). Please try again.", err))
	}

	outcome, err := parseOutcome(raw)
	if err != nil {
		t.logger.Warn("triage returned malformed output", "error", err, "raw", truncate(raw, 200))
		return diagnosticOutcome("I could not interpret the routing decision for your request. Please rephrase and try again.")
	}

	// Recommendations outside the registry are dropped rather than
	// surfacing later as plan validation failures.
	outcome.RecommendedAgents = t.filterKnownAgents(outcome.RecommendedAgents)

	if outcome.Decision == models.TriageDecisionHandoff && len(outcome.RecommendedAgents) == 0 && !t.anyRegistered() {
		return diagnosticOutcome("No specialist agents are available to handle this request.")
	}

	t.logger.Info("triage decision",
		"decision", outcome.Decision,
		"recommended_agents", outcome.RecommendedAgents)
	return outcome
}

func (t *Triager) anyRegistered() bool {
	return len(t.registry.Names()) > 0
}

func (t *Triager) filterKnownAgents(names []string) []string {
	var known []string
	for _, name := range names {
		if t.registry.Has(name) {
			known = append(known, name)
		} else {
			t.logger.Warn("triage recommended unknown agent", "agent", name)
		}
	}
	return known
}

func diagnosticOutcome(message string) *models.TriageOutcome {
	return &models.TriageOutcome{
		Decision:      models.TriageDecisionAnswer,
		AnswerContent: message,
		Reason:        "diagnostic fallback",
	}
}

func parseOutcome(raw string) (*models.TriageOutcome, error) {
	cleaned := stripCodeFence(raw)
	var outcome models.TriageOutcome
	if err := json.Unmarshal([]byte(cleaned), &outcome); err != nil {
		return nil, fmt.Errorf("failed to parse triage output: %w", err)
	}
	switch outcome.Decision {
	case models.TriageDecisionAnswer, models.TriageDecisionHandoff:
	default:
		return nil, fmt.Errorf("unknown triage decision %q", outcome.Decision)
	}
	return &outcome, nil
}

// stripCodeFence tolerates models that wrap JSON in markdown fences
// despite instructions.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
