package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel validation errors.
var (
	ErrDuplicateRepository = errors.New("duplicate repository name")
	ErrUnknownPinned       = errors.New("pinned repository not found")
	ErrTooManyPinned       = errors.New("too many pinned repositories")
	ErrDuplicatePinned     = errors.New("duplicate pinned repository")
)

// Format identifies a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and validates a snapshot file. A path of "-" reads JSON from stdin.
func Load(path string) (*Snapshot, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	snap, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Decode parses a snapshot without validating it.
func Decode(data []byte, format Format) (*Snapshot, error) {
	var snap Snapshot
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, err
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&snap); err != nil {
			return nil, err
		}
	}
	return &snap, nil
}

// Encode serializes a snapshot as JSON, the canonical archive form.
func Encode(snap *Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// Validate checks the structural invariants: repository names are unique and
// pinned names are a duplicate-free subset of at most MaxPinned entries.
func (s *Snapshot) Validate() error {
	names := make(map[string]bool, len(s.Repositories))
	for _, r := range s.Repositories {
		if names[r.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateRepository, r.Name)
		}
		names[r.Name] = true
	}

	if len(s.Pinned) > MaxPinned {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyPinned, len(s.Pinned), MaxPinned)
	}
	seen := make(map[string]bool, len(s.Pinned))
	for _, p := range s.Pinned {
		if seen[p] {
			return fmt.Errorf("%w: %q", ErrDuplicatePinned, p)
		}
		seen[p] = true
		if !names[p] {
			return fmt.Errorf("%w: %q", ErrUnknownPinned, p)
		}
	}
	return nil
}
