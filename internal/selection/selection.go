// Package selection tracks which programs a candidate picked for each modality.
package selection

import (
	"fmt"
	"sort"

	"github.com/admisiones-iti/admisiones/internal/domain/models"
	appErrors "github.com/admisiones-iti/admisiones/internal/errors"
)

// Mode decides what happens to earlier picks when the modality changes.
type Mode string

const (
	// ModeSingle keeps only the active modality's picks: switching clears everything.
	ModeSingle Mode = "single"
	// ModeScoped keeps each modality's picks across switches.
	ModeScoped Mode = "scoped"
)

func SupportedModes() []Mode {
	return []Mode{ModeSingle, ModeScoped}
}

func (m Mode) Valid() bool {
	return m == ModeSingle || m == ModeScoped
}

// State is not safe for concurrent use; one form session owns it.
type State struct {
	mode     Mode
	catalog  []models.Program
	active   models.Modality
	eligible []models.Program
	picked   map[models.Modality]map[int64]struct{}
}

func New(catalog []models.Program, mode Mode) *State {
	if !mode.Valid() {
		mode = ModeSingle
	}
	return &State{
		mode:    mode,
		catalog: catalog,
		picked:  make(map[models.Modality]map[int64]struct{}),
	}
}

func (s *State) Mode() Mode {
	return s.mode
}

func (s *State) Active() models.Modality {
	return s.active
}

// Eligible returns the catalog programs offered in the active modality.
func (s *State) Eligible() []models.Program {
	return s.eligible
}

// SetModality replaces the active modality and recomputes the eligible programs.
// In single mode a change of modality drops every previous pick.
func (s *State) SetModality(m models.Modality) error {
	if !m.Valid() {
		return appErrors.ErrUnknownModality.WithContext("modality", string(m))
	}
	if m != s.active && s.mode == ModeSingle {
		s.Clear()
	}
	s.active = m
	s.eligible = models.FilterByModality(s.catalog, m)
	return nil
}

// Toggle adds programID to the modality's set or removes it if already there.
// Other modalities are left untouched.
func (s *State) Toggle(m models.Modality, programID int64) {
	set, ok := s.picked[m]
	if !ok {
		set = make(map[int64]struct{})
		s.picked[m] = set
	}
	if _, exists := set[programID]; exists {
		delete(set, programID)
		if len(set) == 0 {
			delete(s.picked, m)
		}
		return
	}
	set[programID] = struct{}{}
}

// ToggleActive toggles a program under the active modality, refusing ids that the
// active modality does not offer.
func (s *State) ToggleActive(programID int64) error {
	if s.active == "" {
		return appErrors.ErrNoActiveModality
	}
	for _, p := range s.eligible {
		if p.ID == programID {
			s.Toggle(s.active, programID)
			return nil
		}
	}
	return appErrors.ErrProgramNotEligible.
		WithContext("program_id", programID).
		WithContext("modality", string(s.active))
}

func (s *State) IsSelected(m models.Modality, programID int64) bool {
	_, ok := s.picked[m][programID]
	return ok
}

// Selected returns the ids picked under one modality, ascending.
func (s *State) Selected(m models.Modality) []int64 {
	return sortedIDs(s.picked[m])
}

// Flatten returns the union of all picks across modalities, ascending and without
// duplicates.
func (s *State) Flatten() []int64 {
	union := make(map[int64]struct{})
	for _, set := range s.picked {
		for id := range set {
			union[id] = struct{}{}
		}
	}
	return sortedIDs(union)
}

func (s *State) Count() int {
	return len(s.Flatten())
}

// Clear drops every pick but keeps the active modality.
func (s *State) Clear() {
	s.picked = make(map[models.Modality]map[int64]struct{})
}

// Reset returns the state to a fresh session over the same catalog.
func (s *State) Reset() {
	s.Clear()
	s.active = ""
	s.eligible = nil
}

// Programs resolves the flattened ids against the catalog. Unknown ids are kept
// with a placeholder name so nothing silently disappears from a summary.
func (s *State) Programs() []models.Program {
	byID := make(map[int64]models.Program, len(s.catalog))
	for _, p := range s.catalog {
		byID[p.ID] = p
	}
	ids := s.Flatten()
	out := make([]models.Program, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			p = models.Program{ID: id, Name: fmt.Sprintf("#%d", id)}
		}
		out = append(out, p)
	}
	return out
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
