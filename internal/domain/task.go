// Package domain defines core business entities and value objects for reword.
//
// The domain layer is independent of infrastructure concerns and represents
// pure business logic and data structures.
package domain

// TaskConfig describes one formatting task: the instruction sent to the model
// and the sampling parameters used for it. Values are fixed at startup and
// never mutated.
type TaskConfig struct {
	Name        string
	Description string
	Instruction string
	MaxTokens   int
	Temperature float64
}

// TaskRegistry is a read-only, ordered collection of formatting tasks.
// Enumeration order is insertion order; the selection UI uses it to assign
// ordinal shortcuts (1, 2, 3, ...).
type TaskRegistry struct {
	order []string
	tasks map[string]TaskConfig
}

// NewTaskRegistry builds a registry from the given tasks, preserving order.
func NewTaskRegistry(tasks ...TaskConfig) *TaskRegistry {
	r := &TaskRegistry{tasks: make(map[string]TaskConfig, len(tasks))}
	for _, t := range tasks {
		if _, exists := r.tasks[t.Name]; exists {
			continue
		}
		r.order = append(r.order, t.Name)
		r.tasks[t.Name] = t
	}
	return r
}

// DefaultTaskRegistry returns the built-in formatting tasks.
func DefaultTaskRegistry() *TaskRegistry {
	return NewTaskRegistry(
		TaskConfig{
			Name:        "formal",
			Description: "Professional and polished format",
			Instruction: "Please rewrite the following text in a professional, clear, and well-structured format, fixing any typos or grammatical errors.",
			MaxTokens:   500,
			Temperature: 0.7,
		},
		TaskConfig{
			Name:        "bullet",
			Description: "Convert to organized bullet points",
			Instruction: "Please convert the following text into organized bullet points, fixing any typos or grammatical errors.",
			MaxTokens:   500,
			Temperature: 0.7,
		},
		TaskConfig{
			Name:        "summarize",
			Description: "Create a clear summary",
			Instruction: "Please provide a clear, organized summary of the following text, fixing any typos or grammatical errors.",
			MaxTokens:   300,
			Temperature: 0.7,
		},
	)
}

// Lookup returns the task configuration for the given identifier.
func (r *TaskRegistry) Lookup(name string) (TaskConfig, bool) {
	t, ok := r.tasks[name]
	return t, ok
}

// Names returns task identifiers in registration order.
func (r *TaskRegistry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns task configurations in registration order.
func (r *TaskRegistry) All() []TaskConfig {
	out := make([]TaskConfig, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tasks[name])
	}
	return out
}

// Len reports the number of registered tasks.
func (r *TaskRegistry) Len() int {
	return len(r.order)
}
