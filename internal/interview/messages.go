package interview

// User-facing copy, kept in one place so the wizard and the controller
// agree on wording.
const (
	// SkipSentinel is the literal answer value meaning "skip this question".
	SkipSentinel = "skip"

	// MsgSkipped is the transcript rendering of a skipped answer.
	MsgSkipped = "건너뛰기"

	// MsgInterviewComplete is the single terminal assistant message.
	MsgInterviewComplete = "모든 질문이 완료되었습니다! 이제 상세페이지를 생성할 수 있습니다."

	ErrMsgSessionCreate = "세션 생성에 실패했습니다."
	ErrMsgQuestionLoad  = "질문을 불러오는데 실패했습니다."
	ErrMsgAnswerSubmit  = "답변 제출에 실패했습니다."
)
