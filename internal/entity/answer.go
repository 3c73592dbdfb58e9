package entity

// AnswerKind discriminates the three shapes an answer value can take.
type AnswerKind int

const (
	AnswerKindText AnswerKind = iota
	AnswerKindMultiselect
	AnswerKindFiles
)

// FileRef is a local handle to an image selected for upload. Only the file
// name travels to the backend; the path stays client-side for previews.
type FileRef struct {
	Name string
	Path string
}

// AnswerValue is the discriminated answer for exactly one in-flight question:
// a plain string, an ordered set of strings, or a set of file handles.
type AnswerValue struct {
	Kind       AnswerKind
	Text       string
	Selections []string
	Files      []FileRef
}

func TextAnswer(text string) AnswerValue {
	return AnswerValue{Kind: AnswerKindText, Text: text}
}

func MultiselectAnswer(selections ...string) AnswerValue {
	return AnswerValue{Kind: AnswerKindMultiselect, Selections: selections}
}

func FileAnswer(files ...FileRef) AnswerValue {
	return AnswerValue{Kind: AnswerKindFiles, Files: files}
}
