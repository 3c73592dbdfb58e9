package interview

import (
	"testing"

	"github.com/hyeonw/detailpage-client/internal/entity"
)

func TestSnapshot_IsDetachedCopy(t *testing.T) {
	store := NewStore(8)
	store.AddMessage(entity.ChatMessage{Role: entity.RoleAssistant, Content: "q"})
	store.UpdateContext("field", "value")
	store.SetCurrentQuestion(&entity.Question{FieldName: "field"})

	snap := store.Snapshot()
	snap.Messages[0].Content = "tampered"
	snap.Context["field"] = "tampered"
	snap.CurrentQuestion.FieldName = "tampered"

	fresh := store.Snapshot()
	if fresh.Messages[0].Content != "q" {
		t.Error("mutating snapshot messages leaked into store")
	}
	if fresh.Context["field"] != "value" {
		t.Error("mutating snapshot context leaked into store")
	}
	if fresh.CurrentQuestion.FieldName != "field" {
		t.Error("mutating snapshot question leaked into store")
	}
}

func TestAddMessage_AssignsIDAndTimestamp(t *testing.T) {
	store := NewStore(8)

	first := store.AddMessage(entity.ChatMessage{Role: entity.RoleUser, Content: "a"})
	second := store.AddMessage(entity.ChatMessage{Role: entity.RoleUser, Content: "b"})

	if first.ID == "" || second.ID == "" {
		t.Fatal("expected message ids to be assigned")
	}
	if first.ID == second.ID {
		t.Errorf("expected unique ids, both %q", first.ID)
	}
	if first.Timestamp.IsZero() {
		t.Error("expected timestamp to be assigned")
	}
}

func TestReset_RestoresInitialState(t *testing.T) {
	store := NewStore(8)
	store.SetSessionID(7)
	store.SetStatus(entity.InterviewStatusInProgress)
	store.AddMessage(entity.ChatMessage{Role: entity.RoleUser, Content: "a"})
	store.UpdateContext("k", "v")
	store.IncrementProgress()
	store.SetError("boom")

	// Mutating an old snapshot must not pollute the state after reset.
	leaked := store.Snapshot()
	store.Reset()
	leaked.Context["poison"] = true
	leaked.Messages = append(leaked.Messages, entity.ChatMessage{Content: "ghost"})

	state := store.Snapshot()
	if state.SessionID != 0 || state.Progress != 0 || state.Err != "" {
		t.Errorf("expected zeroed state, got %+v", state)
	}
	if state.Status != entity.InterviewStatusIdle {
		t.Errorf("expected idle, got %s", state.Status)
	}
	if len(state.Messages) != 0 || len(state.Context) != 0 {
		t.Errorf("expected empty transcript and context, got %+v", state)
	}
	if state.TotalSteps != 8 {
		t.Errorf("expected total steps preserved, got %d", state.TotalSteps)
	}
}
