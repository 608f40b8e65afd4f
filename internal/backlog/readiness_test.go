package backlog

import "testing"

func readyIDs(b *Backlog) []string {
	var ids []string
	for _, t := range ReadyTasks(b) {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestReadyTasks_Simple(t *testing.T) {
	b := &Backlog{
		Project: "test",
		Tasks: []Task{
			task("T-1", StateDone),
			task("T-2", StateTodo, "T-1"),
			task("T-3", StateTodo, "T-1", "T-2"),
		},
	}

	got := readyIDs(b)
	if len(got) != 1 || got[0] != "T-2" {
		t.Fatalf("ReadyTasks() = %v, want [T-2]", got)
	}
}

func TestReadyTasks_MissingDepCountsAsSatisfied(t *testing.T) {
	b := &Backlog{
		Project: "test",
		Tasks: []Task{
			task("T-1", StateTodo, "GHOST"),
		},
	}

	got := readyIDs(b)
	if len(got) != 1 || got[0] != "T-1" {
		t.Fatalf("ReadyTasks() = %v, want [T-1]", got)
	}
}

func TestReadyTasks_OrderFollowsFlattening(t *testing.T) {
	b := &Backlog{
		Project: "test",
		Tasks: []Task{
			task("T-2", StateTodo),
			task("T-1", StateTodo),
		},
		Epics: []Epic{
			{ID: "E-1", Title: "First epic", Tasks: []Task{task("T-4", StateTodo)}},
			{ID: "E-2", Title: "Second epic", Tasks: []Task{task("T-3", StateTodo)}},
		},
	}

	got := readyIDs(b)
	want := []string{"T-2", "T-1", "T-4", "T-3"}
	if len(got) != len(want) {
		t.Fatalf("ReadyTasks() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ReadyTasks() = %v, want %v", got, want)
		}
	}
}

func TestReadyTasks_Idempotent(t *testing.T) {
	b := &Backlog{
		Project: "test",
		Tasks: []Task{
			task("T-1", StateDone),
			task("T-2", StateTodo, "T-1"),
		},
	}

	first := readyIDs(b)
	second := readyIDs(b)
	if len(first) != len(second) {
		t.Fatalf("ReadyTasks is not idempotent: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("ReadyTasks is not idempotent: %v vs %v", first, second)
		}
	}
}
