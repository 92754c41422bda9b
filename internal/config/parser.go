package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	elerrors "github.com/alexisbeaulieu97/elemental/pkg/errors"
)

// AppDirName is the directory under the XDG config home.
const AppDirName = "elemental"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath returns $XDG_CONFIG_HOME/elemental/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, "config.yaml")
}

// Load reads settings from path. An empty path selects DefaultPath, and a
// missing default file yields Defaults. A missing explicit path is an error.
func Load(path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, elerrors.NewParseError(path, 0, err)
	}

	return Parse(path, data)
}

// Parse decodes settings over Defaults and validates the result.
func Parse(path string, data []byte) (*Settings, error) {
	settings := Defaults()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, elerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(settings); err != nil {
		return nil, err
	}

	return settings, nil
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
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
