package client

import (
	"sync"

	"github.com/OnitiFR/yd/common"
)

// State is the client state: selected format and whether a conversion
// is in flight. It lives as long as the FileListClient owning it.
type State struct {
	mutex    sync.Mutex
	selected common.Format
	busy     bool
}

// FormatOption is a format as displayed by a view
type FormatOption struct {
	Format   common.Format
	Selected bool
}

// NewState returns a State with the default format selected
func NewState() *State {
	return &State{
		selected: common.DefaultFormat,
	}
}

// Format returns the selected format
func (s *State) Format() common.Format {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.selected
}

// Select a format, unselecting the previous one
func (s *State) Select(f common.Format) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.selected = f
}

// Options returns every supported format, exactly one of them selected
func (s *State) Options() []FormatOption {
	selected := s.Format()
	options := make([]FormatOption, 0, len(common.Formats))
	for _, f := range common.Formats {
		options = append(options, FormatOption{
			Format:   f,
			Selected: f == selected,
		})
	}
	return options
}

// Busy returns true while a conversion is in flight
func (s *State) Busy() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.busy
}

func (s *State) tryBegin() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *State) end() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.busy = false
}
