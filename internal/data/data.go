// Package data holds the embedded element table and decodes it into
// element records.
package data

import (
	_ "embed"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	elerrors "github.com/alexisbeaulieu97/elemental/pkg/errors"
)

// Path names the embedded table in error messages.
const Path = "elements.yaml"

//go:embed elements.yaml
var table []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load decodes the embedded table.
func Load() ([]element.Record, error) {
	return Parse(table)
}

// Parse decodes and validates a table in the elements.yaml format. Records
// must appear in atomic number order starting at 1.
func Parse(data []byte) ([]element.Record, error) {
	var raw []rawRecord
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, elerrors.NewParseError(Path, extractLine(err), err)
	}

	records := make([]element.Record, 0, len(raw))
	for i, r := range raw {
		if err := validateRecord(i, r); err != nil {
			return nil, err
		}
		rec, err := r.record(i)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
