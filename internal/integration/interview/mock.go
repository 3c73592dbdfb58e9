package interview

import (
	"context"
	"sync"
	"time"

	"github.com/hyeonw/detailpage-client/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector replays a fixed question flow without a backend. Used when
// mocks are enabled and in tests.
type MockConnector struct {
	logger *zap.Logger

	mu       sync.Mutex
	nextID   int
	sessions map[int]map[string]any
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger:   logger,
		nextID:   1,
		sessions: make(map[int]map[string]any),
	}
}

var mockFlow = []entity.Question{
	{FieldName: "product_name", Question: "어떤 상품의 상세페이지를 만들까요?", InputType: entity.InputTypeText},
	{FieldName: "category", Question: "이 상품은 어떤 카테고리에 속하나요?", InputType: entity.InputTypeSelect,
		Options: []string{"패션/의류", "뷰티/화장품", "식품", "전자기기", "생활용품", "기타"}},
	{FieldName: "target_customer", Question: "주요 구매 고객은 누구인가요?", InputType: entity.InputTypeText},
	{FieldName: "usp", Question: "이 상품만의 차별점은 무엇인가요?", InputType: entity.InputTypeText},
	{FieldName: "product_images", Question: "상품 이미지를 업로드해주세요 (선택사항)", InputType: entity.InputTypeImageUpload},
	{FieldName: "mood", Question: "어떤 느낌의 디자인을 원하시나요?", InputType: entity.InputTypeSelect,
		Options: []string{"고급스러운", "캐주얼한", "귀여운", "심플한", "전문적인"}},
}

func (m *MockConnector) CreateSession(ctx context.Context, req *entity.CreateSessionRequest) (*entity.Session, error) {
	ctxzap.Info(ctx, "[MOCK] creating interview session")

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	sessionCtx := make(map[string]any)
	if req != nil && req.ReferenceURL != "" {
		sessionCtx["reference_url"] = req.ReferenceURL
	}
	m.sessions[id] = sessionCtx

	return &entity.Session{
		ID:        id,
		Status:    entity.SessionStatusInProgress,
		Context:   sessionCtx,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockConnector) GetSession(ctx context.Context, sessionID int) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sessionCtx, ok := m.sessions[sessionID]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	return &entity.Session{
		ID:      sessionID,
		Status:  entity.SessionStatusInProgress,
		Context: sessionCtx,
	}, nil
}

func (m *MockConnector) NextQuestion(ctx context.Context, sessionID int) (*entity.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	answered, ok := m.sessions[sessionID]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	for _, question := range mockFlow {
		if _, done := answered[question.FieldName]; !done {
			q := question
			return &q, nil
		}
	}

	return &entity.Question{
		Question:  "모든 정보가 수집되었습니다. 상세페이지를 생성할 준비가 되었습니다!",
		InputType: entity.InputTypeComplete,
		FieldName: "complete",
	}, nil
}

func (m *MockConnector) SubmitAnswer(ctx context.Context, req *entity.SubmitAnswerRequest) (*entity.SubmitAnswerResponse, error) {
	ctxzap.Info(ctx, "[MOCK] submitting answer", zap.String("field_name", req.FieldName))

	m.mu.Lock()
	defer m.mu.Unlock()

	answered, ok := m.sessions[req.SessionID]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	answered[req.FieldName] = req.Value

	return &entity.SubmitAnswerResponse{Success: true, FieldName: req.FieldName}, nil
}
