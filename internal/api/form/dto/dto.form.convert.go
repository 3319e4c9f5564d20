package formdto

import (
	"github.com/google/uuid"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/editor"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
)

// ToFieldDefinitions chuyển danh sách FieldInput thành field collection của engine.
// Field không có ID được sinh ID mới; tên được chuẩn hóa và kiểm tra trùng;
// Order luôn được đánh số lại theo vị trí mảng, bỏ qua giá trị client gửi lên.
//
// Parameters:
// - inputs: Danh sách field từ request
//
// Returns:
// - []schema.FieldDefinition: Collection hợp lệ
// - error: common.ErrFormInvalidCharacters hoặc common.ErrFormDuplicateName nếu tên không hợp lệ
func ToFieldDefinitions(inputs []FieldInput) ([]schema.FieldDefinition, error) {
	fields := make([]schema.FieldDefinition, len(inputs))
	seen := make([]string, 0, len(inputs))

	for i, in := range inputs {
		name := schema.NormalizeFieldName(in.Name)
		if err := schema.ValidateFieldName(name, seen); err != nil {
			return nil, err
		}
		seen = append(seen, name)

		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		options := in.Options
		if options == nil {
			options = []string{}
		}
		width := schema.Width(in.Width)
		if !schema.IsValidWidth(width) {
			width = schema.WidthFull
		}

		fields[i] = schema.FieldDefinition{
			ID:           id,
			Name:         name,
			Label:        in.Label,
			Type:         fieldtype.Type(in.Type),
			Options:      options,
			IsRequired:   in.IsRequired,
			Placeholder:  in.Placeholder,
			HelpText:     in.HelpText,
			DefaultValue: in.DefaultValue,
			Width:        width,
			Order:        i,
		}
	}
	return fields, nil
}

// ToFieldPatch chuyển FieldPatchInput thành patch của editor engine.
// Thuộc tính nil được giữ nguyên nil để engine hiểu là "không đổi".
func ToFieldPatch(in FieldPatchInput) editor.FieldPatch {
	patch := editor.FieldPatch{
		Name:         in.Name,
		Label:        in.Label,
		Options:      in.Options,
		IsRequired:   in.IsRequired,
		Placeholder:  in.Placeholder,
		HelpText:     in.HelpText,
		DefaultValue: in.DefaultValue,
	}
	if in.Width != nil {
		w := schema.Width(*in.Width)
		patch.Width = &w
	}
	return patch
}
