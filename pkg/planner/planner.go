// Package planner turns a user query into a validated ExecutionPlan.
// Deterministic paths (transparent proxy, recommendation-driven plans,
// schedule confirmation) never touch the LLM; the LLM handles only the
// open-ended single-agent case.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stockbuddy/stockbuddy/pkg/llm"
	"github.com/stockbuddy/stockbuddy/pkg/models"
	"github.com/stockbuddy/stockbuddy/pkg/remote"
)

// maxClarificationRounds bounds HITL back-and-forth in one planning run.
const maxClarificationRounds = 3

// PlanRequest is everything one planning run needs.
type PlanRequest struct {
	Query             string
	TargetAgentName   string
	UserID            string
	ConversationID    string
	ThreadID          string
	RecommendedAgents []string
	// History holds up to the last three user turns for LLM context.
	History []string
}

// AskFunc requests clarification from the user and blocks until the
// reply arrives or ctx is cancelled. The planning service wires this to
// a UserInputRequest that the orchestrator fulfils on the next turn.
type AskFunc func(ctx context.Context, prompt string) (string, error)

// Planner produces execution plans.
type Planner struct {
	llm                    llm.Client
	registry               *remote.Registry
	fallbackMultiAgentPlan bool
	logger                 *slog.Logger
}

// NewPlanner creates a planner. fallbackMultiAgentPlan toggles the
// single-task investment-query widening.
func NewPlanner(llmClient llm.Client, registry *remote.Registry, fallbackMultiAgentPlan bool, logger *slog.Logger) *Planner {
	return &Planner{
		llm:                    llmClient,
		registry:               registry,
		fallbackMultiAgentPlan: fallbackMultiAgentPlan,
		logger:                 logger.With("component", "planner"),
	}
}

// CreatePlan runs one planning session. A returned error means the plan
// is unusable (malformed model output or validation failure) and the
// session should surface plan_failed; a plan with GuidanceMessage set
// and no tasks means the planner is answering with guidance instead of
// work.
func (p *Planner) CreatePlan(ctx context.Context, req *PlanRequest, ask AskFunc) (*models.ExecutionPlan, error) {
	plan := &models.ExecutionPlan{
		PlanID:         models.NewPlanID(),
		ConversationID: req.ConversationID,
		UserID:         req.UserID,
		OrigQuery:      req.Query,
		CreatedAt:      time.Now().UTC(),
	}

	tasks, guidance, err := p.buildTasks(ctx, req, ask)
	if err != nil {
		return nil, err
	}
	if guidance != "" {
		plan.GuidanceMessage = guidance
		return plan, nil
	}

	if err := ValidatePlan(tasks, p.registry); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	plan.Tasks = tasks
	return plan, nil
}

func (p *Planner) buildTasks(ctx context.Context, req *PlanRequest, ask AskFunc) ([]*models.Task, string, error) {
	// Transparent proxy: an explicitly targeted agent gets the query
	// unchanged, no LLM involved.
	if req.TargetAgentName != "" {
		if !p.registry.Has(req.TargetAgentName) {
			return nil, "", fmt.Errorf("%w: %s", ErrUnknownAgent, req.TargetAgentName)
		}
		p.logger.Info("transparent proxy plan", "agent", req.TargetAgentName)
		return buildTransparentProxy(req), "", nil
	}

	// Explicit schedule: confirm before creating a recurring task.
	if schedule := ExtractSchedule(req.Query); schedule != nil {
		return p.confirmSchedule(ctx, req, schedule, ask)
	}

	// Two or more recommendations: trust the triager's routing.
	if len(req.RecommendedAgents) >= 2 {
		p.logger.Info("direct plan from recommendations", "agents", req.RecommendedAgents)
		return buildFromRecommendations(req), "", nil
	}

	return p.planWithLLM(ctx, req, ask)
}

// confirmSchedule pauses for user confirmation of an explicit schedule,
// unless the query already carries a confirmation token. The user may
// adjust the schedule across rounds; a non-confirming, non-schedule
// reply ends planning with guidance.
func (p *Planner) confirmSchedule(ctx context.Context, req *PlanRequest, schedule *models.ScheduleConfig, ask AskFunc) ([]*models.Task, string, error) {
	if err := schedule.Validate(); err != nil {
		return nil, fmt.Sprintf("The schedule in your request is invalid (%v). Please restate it as an interval or a daily time.", err), nil
	}

	confirmed := HasConfirmationToken(req.Query)
	for round := 0; !confirmed && round < maxClarificationRounds; round++ {
		prompt := fmt.Sprintf("Please confirm the schedule before I set up this task: %s", schedule.String())
		reply, err := ask(ctx, prompt)
		if err != nil {
			return nil, "Schedule confirmation was not received; no recurring task was created. Reply with the schedule and a confirmation to set it up.", nil
		}
		if HasConfirmationToken(reply) {
			confirmed = true
			break
		}
		if adjusted := ExtractSchedule(reply); adjusted != nil {
			schedule = adjusted
			continue
		}
		return nil, fmt.Sprintf("Understood, the %s task was not scheduled. Ask again with a schedule when you want it set up.", schedule.String()), nil
	}
	if !confirmed {
		return nil, "Schedule confirmation was not received; no recurring task was created.", nil
	}

	agent := p.pickAgent(req)
	if agent == "" {
		return nil, "No specialist agent is available to run this scheduled task.", nil
	}
	p.logger.Info("confirmed recurring plan", "agent", agent, "schedule", schedule.String())
	return buildRecurringTask(req, agent, schedule), "", nil
}

func (p *Planner) pickAgent(req *PlanRequest) string {
	for _, name := range req.RecommendedAgents {
		if p.registry.Has(name) {
			return name
		}
	}
	names := p.registry.Names()
	if len(names) == 0 {
		return ""
	}
	// Prefer a monitoring-capable default over a synthesis agent.
	for _, name := range names {
		if !IsSynthesisAgent(name) {
			return name
		}
	}
	return names[0]
}

// plannerResponse is the LLM planning output schema.
type plannerResponse struct {
	Tasks []struct {
		TaskID         string   `json:"task_id"`
		Title          string   `json:"title"`
		Query          string   `json:"query"`
		AgentName      string   `json:"agent_name"`
		Pattern        string   `json:"pattern"`
		DependsOn      []string `json:"depends_on"`
		ScheduleConfig *struct {
			IntervalMinutes int    `json:"interval_minutes"`
			DailyTime       string `json:"daily_time"`
		} `json:"schedule_config"`
	} `json:"tasks"`
	Adequate        bool   `json:"adequate"`
	Reason          string `json:"reason"`
	GuidanceMessage string `json:"guidance_message"`
}

func (p *Planner) planWithLLM(ctx context.Context, req *PlanRequest, ask AskFunc) ([]*models.Task, string, error) {
	system := fmt.Sprintf(plannerInstruction,
		p.registry.CapabilityPrompt(ctx),
		time.Now().Format("2006-01-02 15:04 MST"))

	user := p.buildUserPrompt(req, "")
	for round := 0; ; round++ {
		raw, err := p.llm.Invoke(ctx, system, user)
		if err != nil {
			return nil, "", fmt.Errorf("planning LLM call failed: %w", err)
		}

		var resp plannerResponse
		if err := json.Unmarshal([]byte(stripCodeFence(raw)), &resp); err != nil {
			return nil, "", fmt.Errorf("planner produced malformed output: %w", err)
		}

		if resp.Adequate && len(resp.Tasks) > 0 {
			tasks := p.tasksFromResponse(&resp, req)
			if p.shouldWidenToFallback(req, tasks) {
				p.logger.Info("widening single-task plan to multi-agent fallback")
				tasks = buildFallbackPlan(req, tasks[0])
			}
			return tasks, "", nil
		}

		guidance := resp.GuidanceMessage
		if guidance == "" {
			guidance = resp.Reason
		}
		if guidance == "" {
			guidance = "The planner could not produce tasks for this request."
		}
		if round >= maxClarificationRounds-1 {
			return nil, guidance, nil
		}

		// The model asked for clarification; pause for the user and
		// fold the reply into the next round.
		reply, err := ask(ctx, guidance)
		if err != nil {
			return nil, guidance, nil
		}
		user = p.buildUserPrompt(req, reply)
	}
}

func (p *Planner) buildUserPrompt(req *PlanRequest, clarification string) string {
	var b strings.Builder
	if n := len(req.History); n > 0 {
		b.WriteString("Recent conversation turns:\n")
		start := 0
		if n > 3 {
			start = n - 3
		}
		for _, turn := range req.History[start:] {
			fmt.Fprintf(&b, "- %s\n", turn)
		}
		b.WriteString("\n")
	}
	b.WriteString(req.Query)
	if len(req.RecommendedAgents) == 1 {
		fmt.Fprintf(&b, "\n\n[Recommended Agent: %s]", req.RecommendedAgents[0])
	}
	if clarification != "" {
		fmt.Fprintf(&b, "\n\nUser clarification: %s", clarification)
	}
	return b.String()
}

func (p *Planner) tasksFromResponse(resp *plannerResponse, req *PlanRequest) []*models.Task {
	// Planner-chosen ids are plan-local; remap them to real task ids so
	// depends_on survives.
	idMap := make(map[string]string, len(resp.Tasks))
	for _, t := range resp.Tasks {
		idMap[t.TaskID] = models.NewTaskID()
	}

	tasks := make([]*models.Task, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		pattern := models.TaskPatternOnce
		var schedule *models.ScheduleConfig
		if t.Pattern == string(models.TaskPatternRecurring) {
			pattern = models.TaskPatternRecurring
			if t.ScheduleConfig != nil {
				schedule = &models.ScheduleConfig{
					IntervalMinutes: t.ScheduleConfig.IntervalMinutes,
					DailyTime:       t.ScheduleConfig.DailyTime,
				}
			}
		}
		dependsOn := make([]string, 0, len(t.DependsOn))
		for _, dep := range t.DependsOn {
			if mapped, ok := idMap[dep]; ok {
				dependsOn = append(dependsOn, mapped)
			} else {
				dependsOn = append(dependsOn, dep)
			}
		}
		if len(dependsOn) == 0 {
			dependsOn = nil
		}
		tasks = append(tasks, materialize(taskSpec{
			taskID:    idMap[t.TaskID],
			agentName: t.AgentName,
			title:     t.Title,
			query:     t.Query,
			pattern:   pattern,
			schedule:  schedule,
			dependsOn: dependsOn,
		}, req, req.TargetAgentName == ""))
	}
	return tasks
}

func (p *Planner) shouldWidenToFallback(req *PlanRequest, tasks []*models.Task) bool {
	if !p.fallbackMultiAgentPlan || req.TargetAgentName != "" || len(tasks) != 1 {
		return false
	}
	if !LooksLikeInvestmentQuery(req.Query) {
		return false
	}
	// Only widen when the full trio is actually registered.
	for _, name := range []string{"ResearchAgent", "NewsAgent", "StrategyAgent"} {
		if !p.registry.Has(name) {
			return false
		}
	}
	return true
}

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
