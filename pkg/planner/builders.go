package planner

import (
	"fmt"
	"strings"

	"github.com/stockbuddy/stockbuddy/pkg/models"
)

// IsSynthesisAgent reports whether the agent consumes other agents'
// outputs and therefore belongs at the end of a multi-agent plan.
func IsSynthesisAgent(name string) bool {
	return strings.Contains(name, "Strategy")
}

// taskSpec is the shape of one task before handoff bookkeeping.
type taskSpec struct {
	taskID    string
	agentName string
	title     string
	query     string
	pattern   models.TaskPattern
	schedule  *models.ScheduleConfig
	dependsOn []string
}

// materialize turns a spec into a Task. Handed-off tasks get a fresh
// child conversation id; the parent thread id is preserved throughout.
func materialize(spec taskSpec, req *PlanRequest, handoff bool) *models.Task {
	conversationID := req.ConversationID
	superAgentConversationID := ""
	if handoff {
		superAgentConversationID = req.ConversationID
		conversationID = models.NewConversationID()
	}
	taskID := spec.taskID
	if taskID == "" {
		taskID = models.NewTaskID()
	}
	return &models.Task{
		TaskID:                   taskID,
		ConversationID:           conversationID,
		ThreadID:                 req.ThreadID,
		UserID:                   req.UserID,
		AgentName:                spec.agentName,
		Status:                   models.TaskStatusPending,
		Title:                    spec.title,
		Query:                    spec.query,
		Pattern:                  spec.pattern,
		ScheduleConfig:           spec.schedule,
		DependsOn:                spec.dependsOn,
		HandoffFromSuperAgent:    handoff,
		SuperAgentConversationID: superAgentConversationID,
	}
}

// buildFromRecommendations is the no-LLM path for two or more
// recommended agents: every non-synthesis agent becomes an independent
// task, every synthesis agent depends on all of them. Multi-agent
// routing never depends on the LLM producing correct JSON twice.
func buildFromRecommendations(req *PlanRequest) []*models.Task {
	roleQueries := map[string]string{
		"ResearchAgent": "Research and analyze relevant data: %s",
		"NewsAgent":     "Search for the latest news and developments: %s",
		"StrategyAgent": "Based on the research and news, provide an investment recommendation: %s",
	}

	var independent, synthesis []string
	for _, name := range req.RecommendedAgents {
		if IsSynthesisAgent(name) {
			synthesis = append(synthesis, name)
		} else {
			independent = append(independent, name)
		}
	}

	var tasks []*models.Task
	var independentIDs []string
	for _, name := range independent {
		task := materialize(taskSpec{
			agentName: name,
			title:     taskTitle(name, req.Query),
			query:     roleQuery(roleQueries, name, req.Query),
			pattern:   models.TaskPatternOnce,
		}, req, true)
		tasks = append(tasks, task)
		independentIDs = append(independentIDs, task.TaskID)
	}
	for _, name := range synthesis {
		tasks = append(tasks, materialize(taskSpec{
			agentName: name,
			title:     taskTitle(name, req.Query),
			query:     roleQuery(roleQueries, name, req.Query),
			pattern:   models.TaskPatternOnce,
			dependsOn: independentIDs,
		}, req, true))
	}
	return tasks
}

// buildTransparentProxy forwards the query unchanged to the agent the
// user addressed directly.
func buildTransparentProxy(req *PlanRequest) []*models.Task {
	return []*models.Task{materialize(taskSpec{
		agentName: req.TargetAgentName,
		title:     taskTitle(req.TargetAgentName, req.Query),
		query:     req.Query,
		pattern:   models.TaskPatternOnce,
	}, req, false)}
}

// buildRecurringTask is the post-confirmation path: one recurring task
// with the schedule lifted out of the query text.
func buildRecurringTask(req *PlanRequest, agentName string, schedule *models.ScheduleConfig) []*models.Task {
	query := StripSchedulePhrases(req.Query)
	if query == "" {
		query = req.Query
	}
	return []*models.Task{materialize(taskSpec{
		agentName: agentName,
		title:     taskTitle(agentName, query),
		query:     query,
		pattern:   models.TaskPatternRecurring,
		schedule:  schedule,
	}, req, req.TargetAgentName == "")}
}

// buildFallbackPlan widens a single-task plan for an investment-looking
// query into the research+news→strategy DAG.
func buildFallbackPlan(req *PlanRequest, original *models.Task) []*models.Task {
	base := strings.TrimSpace(req.Query)
	research := materialize(taskSpec{
		agentName: "ResearchAgent",
		title:     "Fundamental Research",
		query:     fmt.Sprintf("Research fundamental data, financial metrics, and market context: %s", base),
		pattern:   original.Pattern,
	}, req, original.HandoffFromSuperAgent)
	news := materialize(taskSpec{
		agentName: "NewsAgent",
		title:     "Latest News & Products",
		query:     fmt.Sprintf("Collect latest news, product updates, and market sentiment: %s", base),
		pattern:   original.Pattern,
	}, req, original.HandoffFromSuperAgent)
	strategy := materialize(taskSpec{
		agentName: "StrategyAgent",
		title:     "Investment Recommendation",
		query:     fmt.Sprintf("Based on research and news, provide an investment recommendation with clear rationale: %s", base),
		pattern:   original.Pattern,
		dependsOn: []string{research.TaskID, news.TaskID},
	}, req, original.HandoffFromSuperAgent)
	return []*models.Task{research, news, strategy}
}

func roleQuery(templates map[string]string, agentName, query string) string {
	if tmpl, ok := templates[agentName]; ok {
		return fmt.Sprintf(tmpl, query)
	}
	return query
}

func taskTitle(agentName, query string) string {
	title := strings.TrimSpace(query)
	if runes := []rune(title); len(runes) > 60 {
		title = string(runes[:60])
	}
	return fmt.Sprintf("%s: %s", strings.TrimSuffix(agentName, "Agent"), title)
}
