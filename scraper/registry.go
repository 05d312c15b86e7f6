package scraper

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ErrUnknownProfile is returned when a site name has no registered profile.
var ErrUnknownProfile = errors.New("unknown site profile")

// Registry is a read-only index of profiles by lowercase name.
type Registry struct {
	byName map[string]Profile
}

// NewRegistry indexes profiles by name. Empty and duplicate names are
// rejected, as are profiles without a base URL or with an unknown family.
func NewRegistry(profiles ...Profile) (Registry, error) {
	byName := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		name := normalizeName(p.Name)
		if name == "" {
			return Registry{}, fmt.Errorf("profile name must not be empty")
		}
		if _, ok := byName[name]; ok {
			return Registry{}, fmt.Errorf("duplicate profile %q", name)
		}
		if strings.TrimSpace(p.BaseURL) == "" {
			return Registry{}, fmt.Errorf("profile %q: base_url must not be empty", name)
		}
		if p.Family != FamilyMovie && p.Family != FamilyAnime {
			return Registry{}, fmt.Errorf("profile %q: unknown family %q", name, p.Family)
		}
		byName[name] = p
	}
	return Registry{byName: byName}, nil
}

// Get returns the profile registered under name. Lookup ignores case and
// surrounding whitespace.
func (r Registry) Get(name string) (Profile, error) {
	name = normalizeName(name)
	if name == "" {
		return Profile{}, fmt.Errorf("%w: empty name", ErrUnknownProfile)
	}
	p, ok := r.byName[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// Names lists the registered profile names in sorted order.
func (r Registry) Names() []string {
	names := lo.Keys(r.byName)
	slices.Sort(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
