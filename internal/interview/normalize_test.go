package interview

import (
	"reflect"
	"testing"

	"github.com/hyeonw/detailpage-client/internal/entity"
)

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		name        string
		value       entity.AnswerValue
		wantWire    any
		wantDisplay string
	}{
		{
			name:        "plain text unchanged",
			value:       entity.TextAnswer("Blue Mug"),
			wantWire:    "Blue Mug",
			wantDisplay: "Blue Mug",
		},
		{
			name:        "skip sentinel",
			value:       entity.TextAnswer(SkipSentinel),
			wantWire:    "",
			wantDisplay: MsgSkipped,
		},
		{
			name:        "files joined by name",
			value:       entity.FileAnswer(entity.FileRef{Name: "a.jpg", Path: "/tmp/a.jpg"}, entity.FileRef{Name: "b.png", Path: "/tmp/b.png"}),
			wantWire:    "a.jpg, b.png",
			wantDisplay: "a.jpg, b.png",
		},
		{
			name:        "multiselect wire unchanged display joined",
			value:       entity.MultiselectAnswer("심플", "고급스러움"),
			wantWire:    []string{"심플", "고급스러움"},
			wantDisplay: "심플, 고급스러움",
		},
		{
			name:        "empty multiselect",
			value:       entity.MultiselectAnswer(),
			wantWire:    []string(nil),
			wantDisplay: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire, display := normalizeAnswer(tt.value)
			if !reflect.DeepEqual(wire, tt.wantWire) {
				t.Errorf("wire: expected %#v, got %#v", tt.wantWire, wire)
			}
			if display != tt.wantDisplay {
				t.Errorf("display: expected %q, got %q", tt.wantDisplay, display)
			}
		})
	}
}
