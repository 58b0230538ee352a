package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// record is a single result. Encoders sort its keys.
type record map[string]any

// writeResult writes data to w in format. Text output writes each of lines
// followed by a newline; the other formats encode data.
func writeResult(w io.Writer, format string, lines []string, data record) error {
	var err error
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(data)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(data); err == nil {
			err = enc.Close()
		}
	case formatTOML:
		err = toml.NewEncoder(w).Encode(data)
	default:
		for _, line := range lines {
			if _, err = fmt.Fprintln(w, line); err != nil {
				break
			}
		}
	}
	if err != nil {
		return fmt.Errorf("write %v output: %w", format, err)
	}
	return nil
}
