package generation

import (
	"sync"

	"github.com/hyeonw/detailpage-client/internal/entity"
)

// State is the generation-side UI state: at most one cached result,
// overwritten on regeneration.
type State struct {
	GenerationID int
	HTMLContent  string
	ImageURL     string
	Status       entity.GenerationStatus
	Err          string
}

func initialState() State {
	return State{Status: entity.GenerationStatusIdle}
}

// Store holds generation state. Lifecycled independently of the interview
// store; setters are total and Reset restores a fresh initial snapshot.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{state: initialState()}
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) SetResult(result *entity.GenerationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.GenerationID = result.ID
	s.state.HTMLContent = result.HTMLContent
	s.state.ImageURL = result.ImageURL
}

func (s *Store) SetImageURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ImageURL = url
}

func (s *Store) SetStatus(status entity.GenerationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status = status
}

func (s *Store) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = message
}

func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = initialState()
}
