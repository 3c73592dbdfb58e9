package wizard

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/hyeonw/detailpage-client/internal/entity"
)

type prompter struct {
	in  *bufio.Scanner
	out func(format string, args ...any)
}

func (p *prompter) readLine(prompt string) (string, bool) {
	p.out("%s ", prompt)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// askYesNo keeps asking until it gets y/n or input ends.
func (p *prompter) askYesNo(prompt string) bool {
	for {
		line, ok := p.readLine(prompt + " (y/n):")
		if !ok {
			return false
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}

// askAnswer collects an answer for one question according to its input
// type. The literal "skip" always means skipping, regardless of type.
// ok=false means the input stream ended.
func (p *prompter) askAnswer(question *entity.Question) (entity.AnswerValue, bool) {
	switch question.InputType {
	case entity.InputTypeSelect:
		return p.askSelect(question.Options, false)
	case entity.InputTypeMultiselect:
		return p.askSelect(question.Options, true)
	case entity.InputTypeImageUpload:
		return p.askFilePaths()
	default:
		return p.askText()
	}
}

func (p *prompter) askText() (entity.AnswerValue, bool) {
	for {
		line, ok := p.readLine("답변:")
		if !ok {
			return entity.AnswerValue{}, false
		}
		if line == "" {
			p.out("답변을 입력해주세요. 건너뛰려면 skip을 입력하세요.\n")
			continue
		}
		return entity.TextAnswer(line), true
	}
}

func (p *prompter) askSelect(options []string, multi bool) (entity.AnswerValue, bool) {
	for i, option := range options {
		p.out("  %d) %s\n", i+1, option)
	}

	prompt := "번호를 선택하세요:"
	if multi {
		prompt = "번호를 선택하세요 (쉼표로 여러 개):"
	}

	for {
		line, ok := p.readLine(prompt)
		if !ok {
			return entity.AnswerValue{}, false
		}
		if line == SkipCommand {
			return entity.TextAnswer(SkipCommand), true
		}

		if !multi {
			index, err := strconv.Atoi(line)
			if err != nil || index < 1 || index > len(options) {
				p.out("1부터 %d 사이의 번호를 입력해주세요.\n", len(options))
				continue
			}
			return entity.TextAnswer(options[index-1]), true
		}

		parts := strings.Split(line, ",")
		selections := make([]string, 0, len(parts))
		valid := true
		for _, part := range parts {
			index, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || index < 1 || index > len(options) {
				valid = false
				break
			}
			selections = append(selections, options[index-1])
		}
		if !valid || len(selections) == 0 {
			p.out("1부터 %d 사이의 번호를 쉼표로 구분해 입력해주세요.\n", len(options))
			continue
		}
		return entity.MultiselectAnswer(selections...), true
	}
}

// askFilePaths returns the raw paths; the caller acquires them through the
// uploads manager so release discipline stays in one place.
func (p *prompter) askFilePaths() (entity.AnswerValue, bool) {
	line, ok := p.readLine("이미지 파일 경로를 입력하세요 (공백으로 여러 개, skip으로 건너뛰기):")
	if !ok {
		return entity.AnswerValue{}, false
	}
	if line == "" || line == SkipCommand {
		return entity.TextAnswer(SkipCommand), true
	}

	paths := strings.Fields(line)
	files := make([]entity.FileRef, 0, len(paths))
	for _, path := range paths {
		files = append(files, entity.FileRef{Path: path})
	}
	return entity.FileAnswer(files...), true
}
