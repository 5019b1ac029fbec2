// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"fmt"
	"os"
	"strings"
)

// ParsePyvenvCfg parses pyvenv.cfg content into a key/value map.
// The format is one "key = value" pair per line:
//   - Keys are case-insensitive and normalized to lowercase
//   - Whitespace around keys and values is trimmed
//   - Empty lines are ignored
//
// The filename parameter is used for error messages.
func ParsePyvenvCfg(content []byte, filename string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%s:%d: invalid format (missing '=')", filename, i+1)
		}

		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return nil, fmt.Errorf("%s:%d: empty key", filename, i+1)
		}

		cfg[key] = strings.TrimSpace(value)
	}

	return cfg, nil
}

// loadPyvenvCfg reads and parses a pyvenv.cfg file.
func loadPyvenvCfg(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pyvenv.cfg: %w", err)
	}
	return ParsePyvenvCfg(content, path)
}
