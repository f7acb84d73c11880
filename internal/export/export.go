// Package export renders task lists in interchange formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/matsen/task-cli/internal/storage"
	"github.com/matsen/task-cli/internal/task"
	"gopkg.in/yaml.v3"
)

// Format is an export format name.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ValidFormats lists the supported export formats.
var ValidFormats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown export format")

// record mirrors task.Task with keys for the YAML and TOML encoders.
type record struct {
	ID          int    `yaml:"id" toml:"id"`
	Description string `yaml:"description" toml:"description"`
	Status      string `yaml:"status" toml:"status"`
	CreatedAt   string `yaml:"createdAt" toml:"createdAt"`
	UpdatedAt   string `yaml:"updatedAt" toml:"updatedAt"`
}

// document is the top-level YAML/TOML shape. TOML has no top-level arrays.
type document struct {
	Tasks []record `yaml:"tasks" toml:"tasks"`
}

// ParseFormat converts a name (case-insensitive, "yml" accepted) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q (valid: %v)", ErrUnknownFormat, name, ValidFormats)
}

// Write renders tasks to w in the given format.
// JSON output is byte-identical to the tasks file.
func Write(w io.Writer, tasks []task.Task, format Format) error {
	switch format {
	case FormatJSON:
		return storage.EncodeTasks(w, tasks)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDocument(tasks)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(toDocument(tasks)); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func toDocument(tasks []task.Task) document {
	doc := document{Tasks: make([]record, 0, len(tasks))}
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, record{
			ID:          t.ID,
			Description: t.Description,
			Status:      string(t.Status),
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		})
	}
	return doc
}
