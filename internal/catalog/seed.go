package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"example.com/signups/internal/domain"
)

// DefaultSeed returns the fixed Mergington High School activity catalog the
// service boots with when no seed file is configured.
func DefaultSeed() []domain.Activity {
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
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball team for interscholastic leagues",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		{
			Name:            "Soccer Club",
			Description:     "Recreational soccer league and tournaments",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"lucas@mergington.edu", "nina@mergington.edu"},
		},
		{
			Name:            "Theater Guild",
			Description:     "Perform in school plays and musicals",
			Schedule:        "Wednesdays and Saturdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"isabella@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Painting, drawing, and sculpture techniques",
			Schedule:        "Mondays and Fridays, 3:30 PM - 4:45 PM",
			MaxParticipants: 16,
			Participants:    []string{"avery@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Compete in debate competitions and develop argumentation skills",
			Schedule:        "Tuesdays and Thursdays, 4:45 PM - 6:00 PM",
			MaxParticipants: 14,
			Participants:    []string{"alexander@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Explore physics, chemistry, and biology through hands-on experiments",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"noah@mergington.edu", "ava@mergington.edu"},
		},
	}
}

type seedEntry struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// LoadSeed reads an activity catalog from a YAML file. Deployments use this to
// swap the catalog without a rebuild; the in-memory lifecycle is unchanged.
func LoadSeed(path string) ([]domain.Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []seedEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("seed file %s contains no activities", path)
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]domain.Activity, 0, len(entries))
	for i, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("seed entry %d: name is required", i)
		}
		if _, dup := seen[entry.Name]; dup {
			return nil, fmt.Errorf("seed entry %d: duplicate activity %q", i, entry.Name)
		}
		if entry.MaxParticipants <= 0 {
			return nil, fmt.Errorf("seed entry %q: max_participants must be > 0", entry.Name)
		}
		seen[entry.Name] = struct{}{}
		out = append(out, domain.Activity{
			Name:            entry.Name,
			Description:     entry.Description,
			Schedule:        entry.Schedule,
			MaxParticipants: entry.MaxParticipants,
			Participants:    entry.Participants,
		})
	}
	return out, nil
}
