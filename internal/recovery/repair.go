package recovery

import "strings"

// repairableKeys are the only field tokens the repair pass touches. Any new
// malformed-input case gets its own explicit rule; this is not a general
// syntax fixer.
var repairableKeys = []string{"id", "title", "depends", "deliverable", "done_when"}

// RepairKeys applies the bounded syntax-repair pass: each known field name
// in unquoted-key form is replaced with its quoted-key form, which coerces a
// JSON-leaning fragment (e.g. {id:"T-1"}) into a shape the YAML parser
// accepts. The result is only adopted if it re-parses; the caller attempts
// this exactly once per failed strict parse.
func RepairKeys(doc string) string {
	out := doc
	for _, key := range repairableKeys {
		out = strings.ReplaceAll(out, key+":", `"`+key+`":`)
	}
	return out
}
