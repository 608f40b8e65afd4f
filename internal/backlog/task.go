package backlog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// State is the completion state of a task.
type State string

const (
	StateTodo State = "Todo"
	StateDone State = "Done"
)

// UnmarshalYAML rejects anything outside the two known states. An absent
// state field is handled separately by Normalize.
func (s *State) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch State(raw) {
	case StateTodo, StateDone:
		*s = State(raw)
		return nil
	default:
		return fmt.Errorf("invalid task state %q (expected Todo or Done)", raw)
	}
}

// Task is a single unit of work in the backlog. IDs are the sole
// cross-reference key and must be unique across the whole document,
// including tasks nested in epics.
type Task struct {
	ID          string       `yaml:"id" json:"id"`
	Title       string       `yaml:"title" json:"title"`
	Depends     []string     `yaml:"depends,omitempty" json:"depends,omitempty"`
	State       State        `yaml:"state" json:"state"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Deliverable *Deliverable `yaml:"deliverable,omitempty" json:"deliverable,omitempty"`
	DoneWhen    []string     `yaml:"done_when,omitempty" json:"done_when,omitempty"`
}

// Deliverable holds either a single path or a list of paths. The document
// form distinguishes the two structurally: a scalar for one, a sequence for
// many. It is purely descriptive and never consumed by validation or
// readiness.
type Deliverable struct {
	One  string
	Many []string
}

func (d *Deliverable) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&d.One)
	case yaml.SequenceNode:
		return value.Decode(&d.Many)
	default:
		return fmt.Errorf("line %d: deliverable must be a string or a list of strings", value.Line)
	}
}

func (d Deliverable) MarshalYAML() (interface{}, error) {
	if d.One != "" {
		return d.One, nil
	}
	return d.Many, nil
}

func (d Deliverable) MarshalJSON() ([]byte, error) {
	if d.One != "" {
		return json.Marshal(d.One)
	}
	return json.Marshal(d.Many)
}

// Paths returns the deliverable paths regardless of which form was used.
// Safe to call on a nil receiver.
func (d *Deliverable) Paths() []string {
	if d == nil {
		return nil
	}
	if d.One != "" {
		return []string{d.One}
	}
	return d.Many
}
