package backlog

// ReadyTasks returns the tasks eligible to start: state Todo with every
// resolvable dependency Done. A dependency id with no matching task counts
// as satisfied here; Validate treats it as fatal and runs first on every
// load path, so the lenient reading only matters when this is called
// standalone on a hand-built value. Output follows effective-set order and
// the query is a stateless projection: repeated calls on an unmodified
// backlog return identical results.
func ReadyTasks(b *Backlog) []*Task {
	tasks := b.AllTasks()

	byID := make(map[string]*Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	var ready []*Task
	for _, t := range tasks {
		if t.State == StateDone {
			continue
		}
		satisfied := true
		for _, dep := range t.Depends {
			if d, ok := byID[dep]; ok && d.State != StateDone {
				satisfied = false
				break
			}
		}
		if satisfied {
			ready = append(ready, t)
		}
	}
	return ready
}
