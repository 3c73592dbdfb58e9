package validator

import (
	"fmt"
	"slices"

	"github.com/hyeonw/detailpage-client/internal/entity"
)

type Validator struct {
	maxImageFiles int
}

func NewValidator(maxImageFiles int) *Validator {
	return &Validator{maxImageFiles: maxImageFiles}
}

// ValidateAnswer checks an answer value against the question it answers.
// The skip sentinel is resolved by the controller before validation runs.
func (v *Validator) ValidateAnswer(question *entity.Question, value entity.AnswerValue) error {
	switch question.InputType {
	case entity.InputTypeText:
		if value.Kind != entity.AnswerKindText {
			return fmt.Errorf("%w: text question expects a string answer", entity.ErrInvalidAnswer)
		}
		if value.Text == "" {
			return fmt.Errorf("%w: answer", entity.ErrMissingField)
		}

	case entity.InputTypeSelect:
		if value.Kind != entity.AnswerKindText {
			return fmt.Errorf("%w: select question expects a single option", entity.ErrInvalidAnswer)
		}
		if !slices.Contains(question.Options, value.Text) {
			return fmt.Errorf("%w: %q is not one of the offered options", entity.ErrInvalidAnswer, value.Text)
		}

	case entity.InputTypeMultiselect:
		if value.Kind != entity.AnswerKindMultiselect {
			return fmt.Errorf("%w: multiselect question expects a list of options", entity.ErrInvalidAnswer)
		}
		if len(value.Selections) == 0 {
			return fmt.Errorf("%w: selections", entity.ErrMissingField)
		}
		for _, selection := range value.Selections {
			if !slices.Contains(question.Options, selection) {
				return fmt.Errorf("%w: %q is not one of the offered options", entity.ErrInvalidAnswer, selection)
			}
		}

	case entity.InputTypeImageUpload:
		if value.Kind != entity.AnswerKindFiles {
			return fmt.Errorf("%w: image question expects file handles", entity.ErrInvalidAnswer)
		}
		if len(value.Files) == 0 {
			return fmt.Errorf("%w: files", entity.ErrMissingField)
		}
		if len(value.Files) > v.maxImageFiles {
			return fmt.Errorf("%w: %d files (max %d)", entity.ErrInvalidAnswer, len(value.Files), v.maxImageFiles)
		}

	case entity.InputTypeComplete:
		return fmt.Errorf("%w: the completion sentinel is not answerable", entity.ErrInvalidAnswer)

	default:
		return fmt.Errorf("%w: input type %s", entity.ErrInvalidParameter, question.InputType)
	}

	return nil
}

// ValidateCreateTemplate validates a template creation request.
func (v *Validator) ValidateCreateTemplate(req *entity.CreateTemplateRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name", entity.ErrMissingField)
	}
	if req.HTMLTemplate == "" {
		return fmt.Errorf("%w: html_template", entity.ErrMissingField)
	}
	if err := req.Category.Validate(); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err)
	}

	return nil
}
