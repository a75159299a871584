package entities

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Participant is a single member of the gift exchange roster
type Participant struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Group string `yaml:"-"` // Family label, carried for display only
}

// Roster is the static set of participants, loaded once at startup.
// It is immutable after loading.
type Roster struct {
	participants []Participant
	byID         map[string]Participant
}

// rosterFile is the on-disk shape of the roster: members grouped by family
type rosterFile struct {
	Families []struct {
		Name    string        `yaml:"name"`
		Members []Participant `yaml:"members"`
	} `yaml:"families"`
}

// NewRoster builds a roster from a flat participant list, validating ID uniqueness
func NewRoster(participants []Participant) (*Roster, error) {
	byID := make(map[string]Participant, len(participants))
	for _, p := range participants {
		if p.ID == "" {
			return nil, fmt.Errorf("participant %q has an empty id", p.Name)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate participant id %q", p.ID)
		}
		byID[p.ID] = p
	}

	return &Roster{
		participants: participants,
		byID:         byID,
	}, nil
}

// LoadRoster reads and validates a roster YAML file
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}

	var participants []Participant
	for _, family := range file.Families {
		for _, member := range family.Members {
			member.Group = family.Name
			participants = append(participants, member)
		}
	}

	if len(participants) == 0 {
		return nil, fmt.Errorf("roster file %s contains no participants", path)
	}

	return NewRoster(participants)
}

// All returns every participant in roster order
func (r *Roster) All() []Participant {
	out := make([]Participant, len(r.participants))
	copy(out, r.participants)
	return out
}

// Get returns the participant with the given ID
func (r *Roster) Get(id string) (Participant, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Contains reports whether the roster has a participant with the given ID
func (r *Roster) Contains(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Size returns the number of participants
func (r *Roster) Size() int {
	return len(r.participants)
}
