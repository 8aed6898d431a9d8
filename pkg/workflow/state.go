// Package workflow implements the sequential context-accumulating pipeline:
// an ordered list of phases where each phase's prompt carries the outputs
// of every phase executed before it.
package workflow

// Entry is one completed phase's output, keyed by phase name.
type Entry struct {
	Name   string
	Output string
}

// State is the insertion-ordered mapping of phase name to produced text,
// accumulated across a single run. Append-only; entries are never removed
// or rewritten. Only the single pipeline goroutine touches it, so there
// is no locking.
type State struct {
	entries []Entry
	index   map[string]int
}

// NewState creates an empty workflow state.
func NewState() *State {
	return &State{
		index: make(map[string]int),
	}
}

// Append records a phase's output. Phase names are unique by config
// validation; a repeated name appends a second entry rather than
// rewriting history.
func (s *State) Append(name, output string) {
	if _, exists := s.index[name]; !exists {
		s.index[name] = len(s.entries)
	}
	s.entries = append(s.entries, Entry{Name: name, Output: output})
}

// Get returns the output stored for a phase name.
func (s *State) Get(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.entries[i].Output, true
}

// Entries returns all entries in execution order (copy).
func (s *State) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of completed phases.
func (s *State) Len() int {
	return len(s.entries)
}
