// Package global - Test các custom validator cho input của form engine.
package global

import (
	"testing"
)

type fieldValidationInput struct {
	Name  string `validate:"required,field_name"`
	Type  string `validate:"required,field_type"`
	Width string `validate:"omitempty,field_width"`
	Label string `validate:"omitempty,no_xss"`
}

func TestCustomValidators(t *testing.T) {
	InitValidator()

	cases := []struct {
		name    string
		input   fieldValidationInput
		wantErr bool
	}{
		{"hợp lệ", fieldValidationInput{Name: "operator_name", Type: "text", Width: "half"}, false},
		{"tên có ký tự lạ", fieldValidationInput{Name: "bad-name!", Type: "text"}, true},
		{"tên viết hoa", fieldValidationInput{Name: "OperatorName", Type: "text"}, true},
		{"loại field ngoài catalog", fieldValidationInput{Name: "x", Type: "signature"}, true},
		{"width không hợp lệ", fieldValidationInput{Name: "x", Type: "text", Width: "quarter"}, true},
		{"label chứa script", fieldValidationInput{Name: "x", Type: "text", Label: "<script>alert(1)</script>"}, true},
		{"width bỏ trống", fieldValidationInput{Name: "x", Type: "divider"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate.Struct(c.input)
			if c.wantErr && err == nil {
				t.Errorf("Muốn lỗi validate với %+v, nhận nil", c.input)
			}
			if !c.wantErr && err != nil {
				t.Errorf("Không muốn lỗi validate với %+v, nhận %v", c.input, err)
			}
		})
	}
}
