// Package catalog supplies the activity table the registry is seeded with.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"example.com/signup/internal/domain"
)

type entry struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

type file struct {
	Activities []entry `yaml:"activities"`
}

// Default returns the built-in Mergington High activity table.
func Default() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

// Load reads an activity table from a YAML file, replacing the built-in one.
func Load(path string) ([]domain.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if len(f.Activities) == 0 {
		return nil, fmt.Errorf("catalog %s defines no activities", path)
	}

	seen := make(map[string]struct{}, len(f.Activities))
	out := make([]domain.Activity, 0, len(f.Activities))
	for i, e := range f.Activities {
		if e.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("catalog entry %q appears twice", e.Name)
		}
		if e.MaxParticipants <= 0 {
			return nil, fmt.Errorf("catalog entry %q needs max_participants > 0", e.Name)
		}
		seen[e.Name] = struct{}{}
		out = append(out, domain.Activity{
			Name:            e.Name,
			Description:     e.Description,
			Schedule:        e.Schedule,
			MaxParticipants: e.MaxParticipants,
			Participants:    append([]string(nil), e.Participants...),
		})
	}
	return out, nil
}
