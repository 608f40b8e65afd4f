package backlog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and strictly parses a backlog document from disk. Documents on
// disk are expected to be well-formed; noisy generated text goes through the
// recovery pipeline instead.
func Load(path string) (*Backlog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backlog file: %w", err)
	}
	b, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse backlog file %s: %w", path, err)
	}
	return b, nil
}

// Decode strictly parses a backlog document, rejecting unknown fields, and
// applies document defaults.
func Decode(data []byte) (*Backlog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var b Backlog
	if err := dec.Decode(&b); err != nil {
		return nil, err
	}
	b.Normalize()
	return &b, nil
}

// Encode serializes the backlog to the document shape with 2-space indent.
func Encode(b *Backlog) ([]byte, error) {
	b.Normalize()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return nil, fmt.Errorf("failed to marshal backlog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal backlog: %w", err)
	}
	return buf.Bytes(), nil
}

// Save atomically writes the backlog document. Uses a temp file + rename in
// the target directory so a failed write never clobbers the original.
func Save(path string, b *Backlog) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace backlog file: %w", err)
	}
	return nil
}
