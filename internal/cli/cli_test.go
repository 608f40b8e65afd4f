package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testBacklog = `project: cli-test
tasks:
  - id: TEST-1
    title: First task
    state: Todo
  - id: TEST-2
    title: Second task
    state: Done
`

// execute runs the command tree with args, capturing cobra's own output.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeBacklog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backlog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write backlog: %v", err)
	}
	return path
}

func TestMarkDoneCommand(t *testing.T) {
	path := writeBacklog(t, testBacklog)

	if err := execute(t, "mark-done", path, "--task", "TEST-1"); err != nil {
		t.Fatalf("mark-done: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read backlog: %v", err)
	}
	if strings.Count(string(data), "state: Done") != 2 {
		t.Errorf("TEST-1 not flipped to Done:\n%s", data)
	}
	if strings.Contains(string(data), "state: Todo") {
		t.Errorf("a Todo state survived:\n%s", data)
	}
}

func TestMarkDoneCommand_UnknownTask(t *testing.T) {
	path := writeBacklog(t, testBacklog)

	err := execute(t, "mark-done", path, "--task", "NOPE")
	if err == nil {
		t.Fatal("mark-done accepted an unknown task id")
	}
	if !strings.Contains(err.Error(), "NOPE") {
		t.Errorf("error %q does not name the missing task", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != testBacklog {
		t.Errorf("file changed on failed mutation:\n%s", data)
	}
}

func TestValidateCommand_OK(t *testing.T) {
	path := writeBacklog(t, testBacklog)

	if err := execute(t, "validate", path); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateCommand_DanglingDependency(t *testing.T) {
	path := writeBacklog(t, `project: cli-test
tasks:
  - id: TEST-1
    title: First task
    depends:
      - GHOST
`)

	err := execute(t, "validate", path)
	if err == nil {
		t.Fatal("validate accepted a dangling dependency")
	}
	if !strings.Contains(err.Error(), "non-existent") {
		t.Errorf("error = %q", err)
	}
}

func TestNextCommand(t *testing.T) {
	path := writeBacklog(t, testBacklog)

	if err := execute(t, "next", path); err != nil {
		t.Fatalf("next: %v", err)
	}
}

func TestSchemaCommand(t *testing.T) {
	if err := execute(t, "schema"); err != nil {
		t.Fatalf("schema: %v", err)
	}
}
