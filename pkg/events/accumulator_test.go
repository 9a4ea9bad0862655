package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulator_OnceModePassesThrough(t *testing.T) {
	factory := NewFactory("conv_1", "thread_1")
	acc := NewScheduledTaskResultAccumulator(false)

	chunk := factory.MessageChunk("task_1", "NewsAgent", "hello")
	assert.Same(t, chunk, acc.Process(chunk))
	assert.Nil(t, acc.Finalize(factory, "task_1", "NewsAgent"))
}

func TestAccumulator_RecurringBuffersChunksAndDropsNoise(t *testing.T) {
	factory := NewFactory("conv_1", "thread_1")
	acc := NewScheduledTaskResultAccumulator(true)

	assert.Nil(t, acc.Process(factory.MessageChunk("task_1", "NewsAgent", "Tesla ")))
	assert.Nil(t, acc.Process(factory.Reasoning("task_1", "NewsAgent", "thinking")))
	assert.Nil(t, acc.Process(factory.ToolCallStarted("task_1", "NewsAgent", "search", "{}")))
	assert.Nil(t, acc.Process(factory.MessageChunk("task_1", "NewsAgent", "up 3%")))

	// Non-chunk events still pass through.
	started := factory.TaskStarted("task_1", "NewsAgent", "Tesla news")
	assert.Same(t, started, acc.Process(started))

	result := acc.Finalize(factory, "task_1", "NewsAgent")
	require.NotNil(t, result)
	assert.Equal(t, KindComponentGenerator, result.Event)
	assert.Equal(t, ComponentScheduleTaskResult, result.Payload["type"])
	content, ok := result.Payload["content"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Tesla up 3%", content["result"])
}

func TestAccumulator_FinalizeResetsBuffer(t *testing.T) {
	factory := NewFactory("conv_1", "thread_1")
	acc := NewScheduledTaskResultAccumulator(true)

	acc.Process(factory.MessageChunk("task_1", "NewsAgent", "first run"))
	first := acc.Finalize(factory, "task_1", "NewsAgent")
	require.NotNil(t, first)

	acc.Process(factory.MessageChunk("task_1", "NewsAgent", "second run"))
	second := acc.Finalize(factory, "task_1", "NewsAgent")
	require.NotNil(t, second)

	content := second.Payload["content"].(map[string]any)
	assert.Equal(t, "second run", content["result"])
}
