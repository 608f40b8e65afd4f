package recovery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taskai/taskai/internal/backlog"
)

// ErrEmptyInput reports that there was nothing to parse at all.
var ErrEmptyInput = errors.New("empty backlog document")

// ParseError reports that no recovery stage produced a strictly parseable
// document. It carries the underlying parser's error for the recovered text.
type ParseError struct {
	Err error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("failed to parse backlog: %v", e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

// Parse turns raw generated text into a validated backlog. The input is
// tried as-is first; on failure the best-effort document extraction runs,
// and if the extracted text still fails to parse, the bounded key-repair
// pass is attempted once. Whatever parses is then checked against the
// document schema and validated for dangling dependencies and cycles, so
// callers never receive an unvalidated backlog.
func Parse(raw string) (*backlog.Backlog, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}

	b, err := decode(raw)
	if err != nil {
		candidate := ExtractDocument(raw)
		b, err = decode(candidate)
		if err != nil {
			repaired, rerr := decode(RepairKeys(candidate))
			if rerr != nil {
				return nil, ParseError{Err: err}
			}
			b = repaired
		}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// decode strictly parses a document and checks it against the backlog
// schema.
func decode(doc string) (*backlog.Backlog, error) {
	b, err := backlog.Decode([]byte(doc))
	if err != nil {
		return nil, err
	}
	if err := backlog.CheckSchema(b); err != nil {
		return nil, err
	}
	return b, nil
}
