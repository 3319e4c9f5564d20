// Package portable chuyển đổi field collection sang/từ tài liệu JSON di động
// để backup, chia sẻ giữa các facility hoặc nhân bản template.
package portable

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
)

// FormatVersion là version tag của định dạng tài liệu export hiện tại.
const FormatVersion = "1.0"

// PortableField là một field trong tài liệu export.
// Không chứa id và order: bên nhận tự sinh id mới và lấy order theo vị trí mảng,
// để identity không rò rỉ giữa các collection và thứ tự mảng luôn là ground truth.
type PortableField struct {
	Name         string         `json:"name"`
	Label        string         `json:"label"`
	Type         fieldtype.Type `json:"type"`
	Options      []string       `json:"options"`
	IsRequired   bool           `json:"isRequired"`
	Placeholder  string         `json:"placeholder"`
	HelpText     string         `json:"helpText"`
	Width        schema.Width   `json:"width"`
	DefaultValue string         `json:"defaultValue"`
}

// Document là tài liệu export hoàn chỉnh.
type Document struct {
	FormType     string          `json:"formType"`
	TemplateName string          `json:"templateName"`
	ExportDate   string          `json:"exportDate"`
	Version      string          `json:"version"`
	Fields       []PortableField `json:"fields"`
}

// Export tạo tài liệu di động từ một field collection.
//
// Parameters:
// - formType: Loại form của collection (vd: "resurface", "incident_report")
// - templateName: Tên template hiển thị
// - fields: Collection cần export, theo đúng thứ tự
//
// Returns:
// - Document: Tài liệu export, fields không chứa id và order
func Export(formType string, templateName string, fields []schema.FieldDefinition) Document {
	out := make([]PortableField, len(fields))
	for i, f := range fields {
		options := make([]string, len(f.Options))
		copy(options, f.Options)
		out[i] = PortableField{
			Name:         f.Name,
			Label:        f.Label,
			Type:         f.Type,
			Options:      options,
			IsRequired:   f.IsRequired,
			Placeholder:  f.Placeholder,
			HelpText:     f.HelpText,
			Width:        f.Width,
			DefaultValue: f.DefaultValue,
		}
	}
	return Document{
		FormType:     formType,
		TemplateName: templateName,
		ExportDate:   time.Now().UTC().Format(time.RFC3339),
		Version:      FormatVersion,
		Fields:       out,
	}
}

// ExportJSON serialize tài liệu export sang JSON (indent cho người đọc).
func ExportJSON(formType string, templateName string, fields []schema.FieldDefinition) ([]byte, error) {
	doc := Export(formType, templateName, fields)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeFormFormat,
			fmt.Sprintf("Lỗi serialize tài liệu export: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}
	return data, nil
}

// rawDocument dùng để phát hiện key "fields" thiếu hoặc sai kiểu khi import.
type rawDocument struct {
	FormType     string          `json:"formType"`
	TemplateName string          `json:"templateName"`
	Fields       json.RawMessage `json:"fields"`
}

// Import parse tài liệu JSON và dựng lại field collection.
// Mỗi field được sinh id mới, order = vị trí mảng; các thuộc tính optional vắng mặt
// nhận giá trị mặc định (options: [], isRequired: false, width: "full", các chuỗi rỗng).
// Kết quả thay thế toàn bộ collection đang làm việc (không merge); việc ghi xuống DB
// do caller quyết định qua template store.
//
// Parameters:
// - data: Nội dung tài liệu JSON
//
// Returns:
// - []schema.FieldDefinition: Collection mới
// - error: common.ErrFormInvalidFormat nếu JSON hỏng, thiếu key "fields" hoặc "fields" không phải mảng
func Import(data []byte) ([]schema.FieldDefinition, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, common.ErrFormInvalidFormat
	}
	if len(raw.Fields) == 0 || string(raw.Fields) == "null" {
		return nil, common.ErrFormInvalidFormat
	}

	var portables []PortableField
	if err := json.Unmarshal(raw.Fields, &portables); err != nil {
		return nil, common.ErrFormInvalidFormat
	}

	fields := make([]schema.FieldDefinition, len(portables))
	for i, p := range portables {
		options := p.Options
		if options == nil {
			options = []string{}
		}
		width := p.Width
		if !schema.IsValidWidth(width) {
			width = schema.WidthFull
		}
		fields[i] = schema.FieldDefinition{
			ID:           uuid.NewString(),
			Name:         schema.NormalizeFieldName(p.Name),
			Label:        p.Label,
			Type:         p.Type,
			Options:      options,
			IsRequired:   p.IsRequired,
			Placeholder:  p.Placeholder,
			HelpText:     p.HelpText,
			DefaultValue: p.DefaultValue,
			Width:        width,
			Order:        i,
		}
	}
	return fields, nil
}
