// Package formdto - input DTO cho domain form.
package formdto

import "encoding/json"

// FieldInput là một field do client gửi lên khi save cấu hình hoặc template.
// ID và Order do client giữ từ phiên editor; server luôn đánh số lại Order
// theo vị trí mảng trước khi lưu. Name nhận cả dạng chưa chuẩn hóa
// ("Operator Name"): chuẩn hóa và validate ký tự/trùng tên diễn ra trong
// ToFieldDefinitions, giống đường import.
type FieldInput struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name" validate:"required,no_xss" maxLength:"100"`
	Label        string   `json:"label" validate:"required,no_xss" maxLength:"200"`
	Type         string   `json:"type" validate:"required,field_type"`
	Options      []string `json:"options,omitempty"`
	IsRequired   bool     `json:"isRequired,omitempty"`
	Placeholder  string   `json:"placeholder,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	HelpText     string   `json:"helpText,omitempty" validate:"omitempty,no_xss" maxLength:"500"`
	DefaultValue string   `json:"defaultValue,omitempty" maxLength:"500"`
	Width        string   `json:"width,omitempty" validate:"omitempty,field_width"`
}

// SaveConfigInput là input khi commit cấu hình đang hoạt động của (facility, formType).
// Thay thế toàn bộ field set hiện có (replace all, không merge).
type SaveConfigInput struct {
	Fields []FieldInput `json:"fields" validate:"required,dive"`
}

// FieldInsertInput là input khi thêm field mới từ palette vào cấu hình.
// Tên field do server sinh tự động, client chỉ cần loại và nhãn.
type FieldInsertInput struct {
	Type  string `json:"type" validate:"required,field_type"`
	Label string `json:"label" validate:"required,no_xss" maxLength:"200"`
}

// FieldReorderInput là input khi kéo thả field đến vị trí mới.
// TargetIndex ngoài biên sẽ được kẹp về [0, n-1], không phải lỗi.
type FieldReorderInput struct {
	TargetIndex int `json:"targetIndex" validate:"min=0"`
}

// FieldPatchInput là input khi sửa thuộc tính field qua properties panel.
// Thuộc tính nil nghĩa là "không đổi" (shallow-merge).
type FieldPatchInput struct {
	Name         *string   `json:"name,omitempty" validate:"omitempty,no_xss"`
	Label        *string   `json:"label,omitempty" validate:"omitempty,no_xss"`
	Options      *[]string `json:"options,omitempty"`
	IsRequired   *bool     `json:"isRequired,omitempty"`
	Placeholder  *string   `json:"placeholder,omitempty" validate:"omitempty,no_xss"`
	HelpText     *string   `json:"helpText,omitempty" validate:"omitempty,no_xss"`
	DefaultValue *string   `json:"defaultValue,omitempty"`
	Width        *string   `json:"width,omitempty" validate:"omitempty,field_width"`
}

// TemplateCreateInput là input để tạo template trong thư viện
type TemplateCreateInput struct {
	Name        string       `json:"name" validate:"required,no_xss" maxLength:"200"`
	FormType    string       `json:"formType" validate:"required,no_xss" maxLength:"100"`
	Description string       `json:"description,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
	FacilityID  string       `json:"facilityId,omitempty" transform:"str_objectid_ptr,optional"`
	Fields      []FieldInput `json:"fields,omitempty" validate:"omitempty,dive"`
}

// TemplateUpdateInput là input để cập nhật metadata của template
// (fields chỉ thay đổi qua operation save riêng để đảm bảo capture version).
type TemplateUpdateInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
}

// TemplateSaveInput là input khi commit field collection mới cho template.
// Mỗi lần save tăng version và capture đúng một snapshot.
type TemplateSaveInput struct {
	Fields    []FieldInput `json:"fields" validate:"required,dive"`
	Changelog string       `json:"changelog,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
}

// TemplateDuplicateInput là input khi nhân bản template
type TemplateDuplicateInput struct {
	Name string `json:"name" validate:"required,no_xss" maxLength:"200"`
}

// ImportInput là input khi import tài liệu di động.
// Document giữ nguyên dạng raw để tầng portable tự parse và validate định dạng.
type ImportInput struct {
	Document json.RawMessage `json:"document" validate:"required"`
}

// TemplateVersionCreateInput là input khi append snapshot version (nội bộ, qua capture)
type TemplateVersionCreateInput struct {
	TemplateID string       `json:"templateId" validate:"required" transform:"str_objectid"`
	Version    int          `json:"version" validate:"required,min=1"`
	Fields     []FieldInput `json:"fields" validate:"required,dive"`
	Changelog  string       `json:"changelog,omitempty" maxLength:"1000"`
}

// TemplateVersionUpdateInput không cho phép cập nhật snapshot (append-only).
// Tồn tại để thỏa chữ ký generic của base handler.
type TemplateVersionUpdateInput struct{}
