package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hyeonw/detailpage-client/internal/config"
	"github.com/hyeonw/detailpage-client/internal/entity"
	"github.com/hyeonw/detailpage-client/internal/gallery"
	"github.com/hyeonw/detailpage-client/internal/generation"
	"github.com/hyeonw/detailpage-client/internal/interview"
	pkglogger "github.com/hyeonw/detailpage-client/internal/pkg/logger"
	"github.com/hyeonw/detailpage-client/internal/uploads"
	"go.uber.org/zap"
)

// SkipCommand is what the user types to skip a question.
const SkipCommand = interview.SkipSentinel

// AnalyzeConnector is the slice of the backend the wizard needs for
// reference-page analysis.
type AnalyzeConnector interface {
	AnalyzeReference(ctx context.Context, url string) (*entity.AnalysisResult, error)
}

// Wizard drives the whole flow in a terminal: optional template pick,
// the interview loop, one-shot generation, and writing the result to disk.
type Wizard struct {
	controller *interview.Controller
	trigger    *generation.Trigger
	gallery    *gallery.Reader
	analyzer   AnalyzeConnector
	uploads    *uploads.Manager
	cfg        *config.Config
	prompt     *prompter
	out        io.Writer
	logger     *zap.Logger
}

func New(
	controller *interview.Controller,
	trigger *generation.Trigger,
	galleryReader *gallery.Reader,
	analyzer AnalyzeConnector,
	uploadManager *uploads.Manager,
	cfg *config.Config,
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
) *Wizard {
	w := &Wizard{
		controller: controller,
		trigger:    trigger,
		gallery:    galleryReader,
		analyzer:   analyzer,
		uploads:    uploadManager,
		cfg:        cfg,
		out:        out,
		logger:     logger,
	}
	w.prompt = &prompter{
		in:  bufio.NewScanner(in),
		out: w.printf,
	}
	return w
}

func (w *Wizard) printf(format string, args ...any) {
	fmt.Fprintf(w.out, format, args...)
}

// Run executes gallery -> interview -> generation -> result.
func (w *Wizard) Run(ctx context.Context) error {
	defer w.uploads.ReleaseAll()

	w.printf("상세페이지 만들기\n\n")

	templateID := w.pickTemplate(pkglogger.WithAction(ctx, "template_pick"))
	referenceURL := w.askReference(pkglogger.WithAction(ctx, "reference_analysis"))

	interviewCtx := pkglogger.WithAction(ctx, "interview")
	if err := w.controller.StartSession(interviewCtx, referenceURL); err != nil {
		return fmt.Errorf("start interview: %w", err)
	}
	interviewCtx = pkglogger.WithSession(interviewCtx, w.controller.State().SessionID)

	if err := w.runInterview(interviewCtx); err != nil {
		return err
	}

	snap := w.controller.State()
	if last := len(snap.Messages); last > 0 {
		w.printf("\n%s\n\n", snap.Messages[last-1].Content)
	}

	generationCtx := pkglogger.WithSession(pkglogger.WithAction(ctx, "generation"), snap.SessionID)
	if err := w.runGeneration(generationCtx, snap.SessionID, templateID); err != nil {
		return err
	}

	return w.writeResult()
}

// pickTemplate lists the catalog and lets the user pick an id, preview one
// ("p <id>") or continue without a template.
func (w *Wizard) pickTemplate(ctx context.Context) *int {
	templates, err := w.gallery.List(ctx, nil)
	if err != nil {
		w.logger.Warn("failed to list templates", zap.Error(err))
		w.printf("템플릿 목록을 불러오지 못했습니다. 템플릿 없이 진행합니다.\n\n")
		return nil
	}
	if len(templates) == 0 {
		return nil
	}

	w.printf("템플릿 갤러리:\n")
	for _, t := range templates {
		marker := " "
		if t.IsDefault {
			marker = "*"
		}
		w.printf("  %s %d) [%s] %s\n", marker, t.ID, t.Category, t.Name)
	}

	for {
		line, ok := w.prompt.readLine("템플릿 번호를 선택하세요 (p <번호>로 미리보기, Enter로 건너뛰기):")
		if !ok || line == "" {
			return nil
		}

		if id, found := strings.CutPrefix(line, "p "); found {
			w.previewTemplate(ctx, strings.TrimSpace(id))
			continue
		}

		id, err := strconv.Atoi(line)
		if err != nil {
			w.printf("번호를 입력해주세요.\n")
			continue
		}
		return &id
	}
}

func (w *Wizard) previewTemplate(ctx context.Context, raw string) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		w.printf("번호를 입력해주세요.\n")
		return
	}

	detail, err := w.gallery.Detail(ctx, id)
	if err != nil {
		w.printf("템플릿을 불러오는 데 실패했습니다: %v\n", err)
		return
	}

	w.printf("\n%s [%s]\n", detail.Name, detail.Category)
	if detail.Description != "" {
		w.printf("%s\n", detail.Description)
	}
	w.printf("(HTML %d bytes)\n\n", len(detail.HTMLTemplate))
}

// askReference optionally analyzes a reference page before the interview.
func (w *Wizard) askReference(ctx context.Context) string {
	url, ok := w.prompt.readLine("참고할 상세페이지 URL이 있나요? (Enter로 건너뛰기):")
	if !ok || url == "" {
		return ""
	}

	result, err := w.analyzer.AnalyzeReference(ctx, url)
	if err != nil {
		w.logger.Warn("reference analysis failed", zap.Error(err))
		w.printf("참고 페이지 분석에 실패했습니다. 분석 없이 진행합니다.\n")
		return url
	}

	w.printf("분석 결과: %s / %s\n", result.LayoutPattern, result.ToneAndManner)
	if len(result.Sections) > 0 {
		w.printf("구성: %s\n", strings.Join(result.Sections, ", "))
	}

	return url
}

func (w *Wizard) runInterview(ctx context.Context) error {
	for {
		snap := w.controller.State()

		switch snap.Status {
		case entity.InterviewStatusCompleted:
			return nil
		case entity.InterviewStatusError:
			return fmt.Errorf("interview failed: %s", snap.Err)
		}

		if snap.CurrentQuestion == nil {
			// A fetch or submit failed mid-exchange; the user decides
			// whether to retry the question fetch.
			if !w.prompt.askYesNo("문제가 발생했습니다. 다시 시도할까요?") {
				return fmt.Errorf("interview aborted: %s", snap.Err)
			}
			if err := w.controller.FetchNextQuestion(ctx); err != nil {
				w.logger.Warn("retry fetch failed", zap.Error(err))
			}
			continue
		}

		w.printf("\n[%d/%d] %s\n", snap.Progress+1, snap.TotalSteps, snap.CurrentQuestion.Question)

		value, ok := w.prompt.askAnswer(snap.CurrentQuestion)
		if !ok {
			return errors.New("input closed")
		}

		value, err := w.resolveFiles(value)
		if err != nil {
			w.printf("%v\n", err)
			continue
		}

		if err := w.submit(ctx, value); err != nil {
			continue
		}
	}
}

// resolveFiles acquires preview handles for file answers through the
// uploads manager, replacing whatever was previously selected.
func (w *Wizard) resolveFiles(value entity.AnswerValue) (entity.AnswerValue, error) {
	if value.Kind != entity.AnswerKindFiles {
		return value, nil
	}

	paths := make([]string, len(value.Files))
	for i, file := range value.Files {
		paths[i] = file.Path
	}

	refs, err := w.uploads.Replace(paths)
	if err != nil {
		return entity.AnswerValue{}, fmt.Errorf("이미지를 열 수 없습니다: %w", err)
	}

	w.printf("이미지가 선택되었습니다.\n")
	return entity.FileAnswer(refs...), nil
}

func (w *Wizard) submit(ctx context.Context, value entity.AnswerValue) error {
	err := w.controller.SubmitAnswer(ctx, value)
	if err == nil {
		if value.Kind == entity.AnswerKindFiles {
			// File names are on the wire; the preview handles are done.
			w.uploads.ReleaseAll()
		}
		return nil
	}

	switch {
	case errors.Is(err, entity.ErrSubmitInFlight):
		w.printf("이전 답변을 처리 중입니다.\n")
	case errors.Is(err, entity.ErrInvalidAnswer), errors.Is(err, entity.ErrMissingField):
		w.printf("%v\n", err)
	default:
		w.logger.Warn("submit failed", zap.Error(err))
	}

	return err
}

func (w *Wizard) runGeneration(ctx context.Context, sessionID int, templateID *int) error {
	for {
		w.printf("상세페이지를 생성하고 있어요...\n")

		err := w.trigger.Generate(ctx, sessionID, templateID, entity.OutputFormatHTML)
		if err == nil {
			return nil
		}

		if !w.prompt.askYesNo("생성에 실패했습니다. 다시 시도할까요?") {
			return err
		}
	}
}

func (w *Wizard) writeResult() error {
	snap := w.trigger.State()
	if snap.HTMLContent == "" {
		return entity.ErrGenerationNotFound
	}

	if err := os.WriteFile(w.cfg.OutputPath, []byte(snap.HTMLContent), 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	w.printf("\n상세페이지가 완성되었어요: %s\n", w.cfg.OutputPath)
	if snap.ImageURL != "" {
		w.printf("이미지: %s\n", snap.ImageURL)
	}

	return nil
}
