package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ProfileFile is the on-disk shape of a profile catalogue.
//
//	agents:
//	  - name: architect_agent
//	    intents: [architecture]
//	    domains: [api, web]
//	    load: 0.3
//	    performance: 0.9
type ProfileFile struct {
	Agents []Profile `yaml:"agents" toml:"agents"`
}

// LoadProfiles reads a YAML (.yaml/.yml) or TOML (.toml) catalogue and validates every entry.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles %s: %w", path, err)
	}

	var file ProfileFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse profiles %s: %w", path, err)
	}

	for i := range file.Agents {
		if file.Agents[i].ServiceName == "" {
			file.Agents[i].ServiceName = DefaultService
		}
		if err := Validate(file.Agents[i]); err != nil {
			return nil, fmt.Errorf("profiles %s entry %d: %w", path, i, err)
		}
	}
	return file.Agents, nil
}
