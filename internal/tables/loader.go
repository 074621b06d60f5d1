package tables

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads economy tables from a YAML file layered over the defaults.
// Scalars and lists in the file replace the default; entries of the
// resources and cases maps replace the matching entry only.
// An empty path returns the defaults.
func Load(path string) (*Tables, error) {
	if path == "" {
		slog.Default().Info(LogMsgTablesDefaultUsed)
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTablesFailed, path, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, err
	}

	slog.Default().Info(LogMsgTablesLoaded, "path", path, "cases", len(t.Cases), "stakes", t.Ladder.Stakes)
	return t, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Tables, error) {
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf(ErrMsgParseTablesFailed, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
