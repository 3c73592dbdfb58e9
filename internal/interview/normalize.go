package interview

import (
	"strings"

	"github.com/hyeonw/detailpage-client/internal/entity"
)

// normalizeAnswer maps an answer to the value sent on the wire and the text
// shown in the transcript:
//
//	skip sentinel        -> empty string, "skipped" label
//	file handles         -> comma-joined file names, same joined string
//	multiselect          -> unchanged []string, comma-joined
//	plain string         -> unchanged, the string itself
func normalizeAnswer(value entity.AnswerValue) (wire any, display string) {
	switch value.Kind {
	case entity.AnswerKindFiles:
		names := make([]string, len(value.Files))
		for i, file := range value.Files {
			names[i] = file.Name
		}
		joined := strings.Join(names, ", ")
		return joined, joined

	case entity.AnswerKindMultiselect:
		return value.Selections, strings.Join(value.Selections, ", ")

	default:
		if value.Text == SkipSentinel {
			return "", MsgSkipped
		}
		return value.Text, value.Text
	}
}
