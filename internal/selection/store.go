// Package selection owns the comparison selection and the browse criteria.
//
// The Store is the single writer for all of this state. Actions are total:
// none of them can fail, and toggling past the selection cap is a silent
// no-op. Only the selected codes survive a restart; criteria and the
// comparing flag reset to defaults every start.
package selection

import (
	"sync"

	"atlascope/internal/logging"
)

// DefaultMaxSelection is the selection cap when the config does not override it.
const DefaultMaxSelection = 3

// SortField selects what the browse list is ordered by.
type SortField string

const (
	SortName       SortField = "name"
	SortPopulation SortField = "population"
	SortArea       SortField = "area"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Criteria is the ephemeral filter/sort state for the browse view.
type Criteria struct {
	SearchQuery   string
	Region        string // empty = all regions; exact match otherwise
	SortField     SortField
	SortDirection SortDirection
}

// DefaultCriteria returns the startup criteria: no filters, name ascending.
func DefaultCriteria() Criteria {
	return Criteria{SortField: SortName, SortDirection: Ascending}
}

// Persister stores the selected codes across restarts.
// store.Store satisfies it.
type Persister interface {
	LoadSelection() ([]string, error)
	SaveSelection(codes []string) error
}

// Store holds the selection set, criteria and comparison flag.
// Safe for concurrent use; all mutation goes through the methods below.
type Store struct {
	mu           sync.RWMutex
	selected     []string
	maxSelection int
	criteria     Criteria
	comparing    bool
	persister    Persister // nil disables persistence
}

// NewStore creates a Store with the given cap (<= 0 selects the default)
// and restores the persisted selection if a persister is supplied.
func NewStore(maxSelection int, persister Persister) *Store {
	if maxSelection <= 0 {
		maxSelection = DefaultMaxSelection
	}

	s := &Store{
		maxSelection: maxSelection,
		criteria:     DefaultCriteria(),
		persister:    persister,
	}

	if persister != nil {
		codes, err := persister.LoadSelection()
		if err != nil {
			logging.Warn("failed to restore selection", "error", err)
		} else {
			s.selected = capAndDedupe(codes, maxSelection)
		}
	}

	return s
}

// capAndDedupe drops duplicate codes and enforces the cap. A persisted slot
// written by an older build with a larger cap must not break the invariant.
func capAndDedupe(codes []string, max int) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, max)
	for _, code := range codes {
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
		if len(out) == max {
			break
		}
	}
	return out
}

// Toggle adds code if absent and there is room, removes it if present, and
// silently does nothing when the selection is full and code is absent.
func (s *Store) Toggle(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.selected {
		if c == code {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			s.persist()
			return
		}
	}

	if len(s.selected) >= s.maxSelection {
		return
	}
	s.selected = append(s.selected, code)
	s.persist()
}

// Clear empties the selection and forces comparison mode off.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
	s.comparing = false
	s.persist()
}

// Selected returns a copy of the selected codes in selection order.
func (s *Store) Selected() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// IsSelected reports whether code is currently selected.
func (s *Store) IsSelected(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.selected {
		if c == code {
			return true
		}
	}
	return false
}

// Count returns the current selection size.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}

// MaxSelection returns the selection cap.
func (s *Store) MaxSelection() int {
	return s.maxSelection
}

// Full reports whether the selection is at its cap.
func (s *Store) Full() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected) >= s.maxSelection
}

// Criteria returns the current filter/sort criteria.
func (s *Store) Criteria() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

// SetSearchQuery updates the free-text filter.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.SearchQuery = query
}

// SetRegion updates the region filter. Empty means all regions.
func (s *Store) SetRegion(region string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Region = region
}

// SetSortField updates the sort field. Unknown fields are ignored.
func (s *Store) SetSortField(field SortField) {
	switch field {
	case SortName, SortPopulation, SortArea:
	default:
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.SortField = field
}

// ToggleSortDirection flips asc and desc.
func (s *Store) ToggleSortDirection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.criteria.SortDirection == Ascending {
		s.criteria.SortDirection = Descending
	} else {
		s.criteria.SortDirection = Ascending
	}
}

// Comparing reports the comparison-mode flag. The view layer still requires
// at least two selected countries before rendering the comparison.
func (s *Store) Comparing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.comparing
}

// SetComparing sets the comparison-mode flag.
func (s *Store) SetComparing(comparing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comparing = comparing
}

// persist writes the selection through the persister. Callers hold the lock.
// Persistence failures are logged and otherwise ignored; selection state in
// memory stays authoritative for the session.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	codes := make([]string, len(s.selected))
	copy(codes, s.selected)
	if err := s.persister.SaveSelection(codes); err != nil {
		logging.Warn("failed to persist selection", "error", err)
	}
}
