package scraper

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// profileFile is the on-disk shape of a profiles file.
type profileFile struct {
	Profiles []yaml.Node `yaml:"profiles"`
}

// LoadProfiles returns the built-in profiles with the profiles in path
// merged over them. An entry whose name matches a built-in profile only
// overrides the keys it sets; any other entry is added as a new profile. A
// missing file yields the built-ins unchanged. An empty path does the same.
func LoadProfiles(path string) ([]Profile, error) {
	profiles := Builtin()
	if path == "" {
		return profiles, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return profiles, nil
		}
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	return MergeProfiles(profiles, data)
}

// MergeProfiles decodes YAML profile overrides from data onto base.
func MergeProfiles(base []Profile, data []byte) ([]Profile, error) {
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file: %w", err)
	}

	index := make(map[string]int, len(base))
	for i, p := range base {
		index[normalizeName(p.Name)] = i
	}

	for i := range file.Profiles {
		node := &file.Profiles[i]

		var head struct {
			Name string `yaml:"name"`
		}
		if err := node.Decode(&head); err != nil {
			return nil, fmt.Errorf("profile %d: %w", i, err)
		}
		name := normalizeName(head.Name)
		if name == "" {
			return nil, fmt.Errorf("profile %d: name must not be empty", i)
		}

		if at, ok := index[name]; ok {
			merged := base[at]
			if err := node.Decode(&merged); err != nil {
				return nil, fmt.Errorf("profile %q: %w", name, err)
			}
			merged.Name = name
			base[at] = merged
			continue
		}

		var p Profile
		if err := node.Decode(&p); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		p.Name = name
		if p.Family == "" {
			p.Family = FamilyMovie
		}
		p.BaseURL = strings.TrimSpace(p.BaseURL)
		index[name] = len(base)
		base = append(base, p)
	}

	return base, nil
}
