package validator

import (
	"errors"
	"testing"

	"github.com/hyeonw/detailpage-client/internal/entity"
)

func TestValidateAnswer(t *testing.T) {
	v := NewValidator(3)

	textQ := &entity.Question{InputType: entity.InputTypeText, FieldName: "product_name"}
	selectQ := &entity.Question{InputType: entity.InputTypeSelect, FieldName: "category", Options: []string{"fashion", "beauty"}}
	multiQ := &entity.Question{InputType: entity.InputTypeMultiselect, FieldName: "usp", Options: []string{"A", "B"}}
	imageQ := &entity.Question{InputType: entity.InputTypeImageUpload, FieldName: "product_images"}

	tests := []struct {
		name     string
		question *entity.Question
		value    entity.AnswerValue
		wantErr  error
	}{
		{"text ok", textQ, entity.TextAnswer("Blue Mug"), nil},
		{"text empty", textQ, entity.TextAnswer(""), entity.ErrMissingField},
		{"text wrong kind", textQ, entity.MultiselectAnswer("a"), entity.ErrInvalidAnswer},
		{"select ok", selectQ, entity.TextAnswer("beauty"), nil},
		{"select unknown option", selectQ, entity.TextAnswer("spaceships"), entity.ErrInvalidAnswer},
		{"multiselect ok", multiQ, entity.MultiselectAnswer("A", "B"), nil},
		{"multiselect empty", multiQ, entity.MultiselectAnswer(), entity.ErrMissingField},
		{"multiselect unknown option", multiQ, entity.MultiselectAnswer("A", "Z"), entity.ErrInvalidAnswer},
		{"image ok", imageQ, entity.FileAnswer(entity.FileRef{Name: "a.jpg"}), nil},
		{"image none", imageQ, entity.FileAnswer(), entity.ErrMissingField},
		{
			"image too many", imageQ,
			entity.FileAnswer(
				entity.FileRef{Name: "a.jpg"}, entity.FileRef{Name: "b.jpg"},
				entity.FileRef{Name: "c.jpg"}, entity.FileRef{Name: "d.jpg"},
			),
			entity.ErrInvalidAnswer,
		},
		{
			"complete sentinel unanswerable",
			&entity.Question{InputType: entity.InputTypeComplete},
			entity.TextAnswer("anything"),
			entity.ErrInvalidAnswer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateAnswer(tt.question, tt.value)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateCreateTemplate(t *testing.T) {
	v := NewValidator(3)

	valid := &entity.CreateTemplateRequest{
		Name:         "템플릿",
		Category:     entity.CategoryHome,
		HTMLTemplate: "<html></html>",
	}
	if err := v.ValidateCreateTemplate(valid); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	noName := *valid
	noName.Name = ""
	if err := v.ValidateCreateTemplate(&noName); !errors.Is(err, entity.ErrMissingField) {
		t.Errorf("expected ErrMissingField for name, got %v", err)
	}

	noHTML := *valid
	noHTML.HTMLTemplate = ""
	if err := v.ValidateCreateTemplate(&noHTML); !errors.Is(err, entity.ErrMissingField) {
		t.Errorf("expected ErrMissingField for html, got %v", err)
	}

	badCategory := *valid
	badCategory.Category = "spaceships"
	if err := v.ValidateCreateTemplate(&badCategory); !errors.Is(err, entity.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for category, got %v", err)
	}
}
