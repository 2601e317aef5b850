package theme

import "sync"

type Snapshot struct {
	Preference Preference
	Mode       Mode
	Mounted    bool
}

func (s Snapshot) IsDark() bool {
	return s.Mode == ModeDark
}

// State is the single source of truth for the painted theme. Anything that
// renders (the root class, the toggle icon) reads it instead of recomputing.
type State struct {
	mu        sync.RWMutex
	current   Snapshot
	listeners []func(Snapshot)
}

func NewState() *State {
	return &State{current: Snapshot{Preference: DefaultPreference, Mode: ModeLight}}
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *State) Preference() Preference { return s.Snapshot().Preference }
func (s *State) Mode() Mode             { return s.Snapshot().Mode }
func (s *State) IsDark() bool           { return s.Snapshot().IsDark() }
func (s *State) Mounted() bool          { return s.Snapshot().Mounted }

// OnChange registers fn to be called after every change.
func (s *State) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *State) SetPreference(p Preference) {
	s.update(func(snap *Snapshot) { snap.Preference = p })
}

// Apply sets the painted mode. It is ignored until the state is mounted.
func (s *State) Apply(m Mode) {
	s.update(func(snap *Snapshot) {
		if snap.Mounted {
			snap.Mode = m
		}
	})
}

func (s *State) MarkMounted() {
	s.update(func(snap *Snapshot) { snap.Mounted = true })
}

func (s *State) update(fn func(*Snapshot)) {
	s.mu.Lock()
	before := s.current
	fn(&s.current)
	after := s.current
	listeners := append(([]func(Snapshot))(nil), s.listeners...)
	s.mu.Unlock()

	if after == before {
		return
	}
	for _, l := range listeners {
		l(after)
	}
}
