package backlog

import (
	"fmt"
	"strings"
)

// DuplicateIDError reports two tasks sharing one id.
type DuplicateIDError struct {
	ID string
}

func (e DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate task id %q", e.ID)
}

// DanglingDependencyError reports a dependency on a task that does not exist
// anywhere in the effective task set.
type DanglingDependencyError struct {
	TaskID    string
	DependsOn string
}

func (e DanglingDependencyError) Error() string {
	return fmt.Sprintf("task %s depends on non-existent task %s", e.TaskID, e.DependsOn)
}

// CycleError reports one dependency cycle as evidence. Path runs from the
// cycle's entry point to the repeated id, e.g. ["X", "Y", "X"].
type CycleError struct {
	Path []string
}

func (e CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Path, " -> "))
}

// Validate decides whether the backlog is internally consistent: task ids
// unique, every dependency resolvable, and the dependency graph acyclic.
// It is a pure predicate over the in-memory value; the first violation found
// wins. Dangling references are reported before cycle detection runs, since
// a cycle search over a graph with unresolved edges is meaningless.
func (b *Backlog) Validate() error {
	tasks := b.AllTasks()

	byID := make(map[string]*Task, len(tasks))
	for _, t := range tasks {
		if _, ok := byID[t.ID]; ok {
			return DuplicateIDError{ID: t.ID}
		}
		byID[t.ID] = t
	}

	for _, t := range tasks {
		for _, dep := range t.Depends {
			if _, ok := byID[dep]; !ok {
				return DanglingDependencyError{TaskID: t.ID, DependsOn: dep}
			}
		}
	}

	if cycle := depCycle(tasks, byID); len(cycle) > 0 {
		return CycleError{Path: cycle}
	}

	return nil
}

type visitState uint8

const (
	visitNew visitState = iota
	visitVisiting
	visitDone
)

// depCycle returns a dependency cycle path if one exists, else nil. Starting
// tasks are tried in effective-set order so the first cycle reported is
// deterministic.
func depCycle(tasks []*Task, byID map[string]*Task) []string {
	state := map[string]visitState{}
	onStack := map[string]int{} // id -> index in stack
	var stack []string
	var cycle []string

	var dfs func(t *Task)
	dfs = func(t *Task) {
		if len(cycle) > 0 {
			return
		}

		state[t.ID] = visitVisiting
		onStack[t.ID] = len(stack)
		stack = append(stack, t.ID)

		for _, dep := range t.Depends {
			if len(cycle) > 0 {
				return
			}
			next, ok := byID[dep]
			if !ok {
				// Dangling deps fail validation before this runs; a stray one
				// has no further edges.
				continue
			}
			switch state[dep] {
			case visitNew:
				dfs(next)
			case visitVisiting:
				idx := onStack[dep]
				cycle = append([]string{}, stack[idx:]...)
				cycle = append(cycle, dep)
				return
			case visitDone:
				// already explored, nothing to do
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, t.ID)
		state[t.ID] = visitDone
	}

	for _, t := range tasks {
		if state[t.ID] == visitNew {
			dfs(t)
			if len(cycle) > 0 {
				return cycle
			}
		}
	}

	return nil
}
