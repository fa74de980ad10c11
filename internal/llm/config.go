package llm

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskRoadmap TaskType = "roadmap"
)

// Provider names a generation backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled        bool
	LogCalls       bool
	Provider       Provider
	Endpoint       string
	APIKey         string
	Model          string
	TimeoutMs      int
	MaxRetries     int
	RetryBackoffMs int
	Tasks          map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig targeting Gemini.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:        true,
		LogCalls:       false,
		Provider:       ProviderGemini,
		Endpoint:       "https://generativelanguage.googleapis.com",
		Model:          "gemini-2.0-flash-lite",
		TimeoutMs:      30000,
		MaxRetries:     2,
		RetryBackoffMs: 500,
		Tasks: map[TaskType]TaskConfig{
			TaskRoadmap: {Temperature: 0.7, MaxTokens: 2048, TimeoutMs: 60000},
		},
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
