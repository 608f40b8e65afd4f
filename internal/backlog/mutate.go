package backlog

import "fmt"

// TaskNotFoundError reports a mutation target that does not exist anywhere
// in the effective task set.
type TaskNotFoundError struct {
	ID string
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task with ID %q not found in the backlog", e.ID)
}

// MarkDone flips a single task's state to Done, leaving everything else
// untouched. Top-level tasks are searched before epic tasks, matching
// effective-set order.
func (b *Backlog) MarkDone(id string) error {
	for _, t := range b.AllTasks() {
		if t.ID == id {
			t.State = StateDone
			return nil
		}
	}
	return TaskNotFoundError{ID: id}
}
