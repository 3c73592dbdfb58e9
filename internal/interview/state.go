package interview

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hyeonw/detailpage-client/internal/entity"
)

// State is the interview-side UI state for one wizard run. It mirrors the
// backend session: the transcript, the current question, the accumulated
// answer context, and the linear status flag.
type State struct {
	SessionID       int
	Messages        []entity.ChatMessage
	CurrentQuestion *entity.Question
	Context         map[string]any
	Status          entity.InterviewStatus
	Progress        int
	TotalSteps      int
	Err             string
}

func initialState(totalSteps int) State {
	return State{
		Messages:   make([]entity.ChatMessage, 0),
		Context:    make(map[string]any),
		Status:     entity.InterviewStatusIdle,
		TotalSteps: totalSteps,
	}
}

// Store holds interview state behind a mutex. Every setter is total: it
// cannot fail and cannot panic on any input. Stores are injected, never
// package-level, so each test can run against its own instance.
type Store struct {
	mu         sync.Mutex
	state      State
	totalSteps int
}

func NewStore(totalSteps int) *Store {
	return &Store{
		state:      initialState(totalSteps),
		totalSteps: totalSteps,
	}
}

// Snapshot returns a value copy of the state. Mutating the copy (including
// its messages slice and context map) never affects the store.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyState(s.state)
}

func copyState(state State) State {
	snap := state
	snap.Messages = make([]entity.ChatMessage, len(state.Messages))
	copy(snap.Messages, state.Messages)
	snap.Context = make(map[string]any, len(state.Context))
	for key, value := range state.Context {
		snap.Context[key] = value
	}
	if state.CurrentQuestion != nil {
		question := *state.CurrentQuestion
		snap.CurrentQuestion = &question
	}
	return snap
}

func (s *Store) SetSessionID(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SessionID = id
}

// AddMessage appends a transcript entry, assigning it a unique id and a
// timestamp. The transcript is append-only; entries are never mutated or
// removed after creation.
func (s *Store) AddMessage(msg entity.ChatMessage) entity.ChatMessage {
	msg.ID = "msg-" + uuid.NewString()
	msg.Timestamp = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Messages = append(s.state.Messages, msg)

	return msg
}

func (s *Store) SetCurrentQuestion(question *entity.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentQuestion = question
}

func (s *Store) UpdateContext(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Context[key] = value
}

func (s *Store) SetStatus(status entity.InterviewStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status = status
}

// IncrementProgress advances the progress counter by exactly one. It never
// decreases except through Reset.
func (s *Store) IncrementProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Progress++
}

func (s *Store) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = message
}

// Reset restores the exact initial snapshot. The snapshot is rebuilt by
// value on every call, so mutations of previously returned state cannot
// leak into the next run.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = initialState(s.totalSteps)
}
