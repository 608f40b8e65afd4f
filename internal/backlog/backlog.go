// Package backlog defines the project backlog model and the consistency and
// readiness queries over it.
package backlog

// Epic is a named grouping of tasks. It has no dependencies and no state of
// its own; it exists to organize the flat task namespace for display.
type Epic struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Tasks []Task `yaml:"tasks,omitempty" json:"tasks,omitempty"`
}

// Backlog is the full set of tasks, epics, and metadata for a project.
type Backlog struct {
	Project         string         `yaml:"project" json:"project"`
	SuccessCriteria []string       `yaml:"success_criteria,omitempty" json:"success_criteria,omitempty"`
	Environment     map[string]any `yaml:"environment,omitempty" json:"environment,omitempty"`
	Epics           []Epic         `yaml:"epics,omitempty" json:"epics,omitempty"`
	Tasks           []Task         `yaml:"tasks,omitempty" json:"tasks,omitempty"`
}

// AllTasks returns the effective task set: top-level tasks first, then tasks
// nested in epics, preserving encounter order. The returned pointers alias
// the backlog's own tasks so mutations through them are visible.
func (b *Backlog) AllTasks() []*Task {
	out := make([]*Task, 0, len(b.Tasks))
	for i := range b.Tasks {
		out = append(out, &b.Tasks[i])
	}
	for e := range b.Epics {
		for i := range b.Epics[e].Tasks {
			out = append(out, &b.Epics[e].Tasks[i])
		}
	}
	return out
}

// Normalize applies document defaults that decoding leaves unset. The only
// such default is the task state, which is Todo when absent.
func (b *Backlog) Normalize() {
	for _, t := range b.AllTasks() {
		if t.State == "" {
			t.State = StateTodo
		}
	}
}
