package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_TargetsGemini(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.0-flash-lite", cfg.Model)
	assert.Equal(t, 60000, cfg.Tasks[TaskRoadmap].TimeoutMs)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 9000

	assert.Equal(t, 60000, cfg.TaskTimeout(TaskRoadmap))
	assert.Equal(t, 9000, cfg.TaskTimeout("unknown"))

	cfg.Tasks[TaskRoadmap] = TaskConfig{Temperature: 0.5}
	assert.Equal(t, 9000, cfg.TaskTimeout(TaskRoadmap))
}
