package recovery

import (
	"strings"
	"testing"
)

func TestExtractDocument(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare document unchanged",
			in:   "project: p\ntasks: []\n",
			want: "project: p\ntasks: []\n",
		},
		{
			name: "leading whitespace before document",
			in:   "  \nproject: p\ntasks: []\n",
			want: "  \nproject: p\ntasks: []\n",
		},
		{
			name: "yaml tagged fence",
			in:   "Sure, here it is:\n```yaml\nproject: p\ntasks: []\n```\nHope that helps.",
			want: "project: p\ntasks: []",
		},
		{
			name: "untagged fence",
			in:   "Sure:\n```\nproject: p\ntasks: []\n```\n",
			want: "project: p\ntasks: []",
		},
		{
			name: "yaml fence preferred over earlier bare fence",
			in:   "```\nnot it\n```\n```yaml\nproject: p\ntasks: []\n```\n",
			want: "project: p\ntasks: []",
		},
		{
			name: "prose then blank line terminator",
			in:   "Here is the plan.\nproject: p\ntasks: []\n\nLet me know if you want changes.",
			want: "project: p\ntasks: []",
		},
		{
			name: "document separator terminator",
			in:   "Intro text project: p\ntasks: []\n---\nfootnotes",
			want: "project: p\ntasks: []",
		},
		{
			name: "heading terminator",
			in:   "Notes: project: p\ntasks: []\n### Summary\nmore prose",
			want: "project: p\ntasks: []",
		},
		{
			name: "project slice runs to end without terminator",
			in:   "preamble project: p\ntasks: []",
			want: "project: p\ntasks: []",
		},
		{
			name: "nothing recognizable comes back unchanged",
			in:   "I could not produce a plan, sorry.",
			want: "I could not produce a plan, sorry.",
		},
		{
			name: "empty fence falls through to project slice",
			in:   "```\n```\nproject: p\ntasks: []\n\ndone",
			want: "project: p\ntasks: []",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDocument(tt.in); got != tt.want {
				t.Errorf("ExtractDocument(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRepairKeys_QuotesKnownKeysOnly(t *testing.T) {
	in := `tasks:
  - {id:"T-1", title:"Test", depends:[], custom:"x"}`
	got := RepairKeys(in)
	for _, want := range []string{`"id":"T-1"`, `"title":"Test"`, `"depends":[]`} {
		if !strings.Contains(got, want) {
			t.Errorf("RepairKeys output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, `"custom":`) {
		t.Errorf("RepairKeys touched an unknown key:\n%s", got)
	}
}
