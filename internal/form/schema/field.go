// Package schema định nghĩa FieldDefinition — đơn vị schema nhỏ nhất của form engine —
// cùng các quy tắc chuẩn hóa và validate tên field.
package schema

import (
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
)

// Width là gợi ý layout cho field, không ảnh hưởng validate.
type Width string

const (
	WidthFull  Width = "full"  // Chiếm toàn bộ chiều ngang
	WidthHalf  Width = "half"  // Chiếm một nửa
	WidthThird Width = "third" // Chiếm một phần ba
)

// IsValidWidth kiểm tra giá trị width có hợp lệ không.
func IsValidWidth(w Width) bool {
	return w == WidthFull || w == WidthHalf || w == WidthThird
}

// FieldDefinition mô tả một field trong collection của template.
// Trường Order luôn được engine tính lại theo vị trí trong mảng (0..n-1),
// không bao giờ tin giá trị do caller cung cấp.
type FieldDefinition struct {
	ID           string         `json:"id" bson:"id"`                     // Định danh duy nhất, sinh khi tạo field, ổn định suốt vòng đời
	Name         string         `json:"name" bson:"name"`                 // Machine key, lowercase, không whitespace, unique trong collection
	Label        string         `json:"label" bson:"label"`               // Nhãn hiển thị cho người dùng
	Type         fieldtype.Type `json:"type" bson:"type"`                 // Loại field, thuộc catalog đóng
	Options      []string       `json:"options" bson:"options"`           // Danh sách lựa chọn, chỉ có nghĩa với select/radio
	IsRequired   bool           `json:"isRequired" bson:"isRequired"`     // true: bắt buộc nhập khi submit
	Placeholder  string         `json:"placeholder" bson:"placeholder"`   // Placeholder hiển thị, không ảnh hưởng validate
	HelpText     string         `json:"helpText" bson:"helpText"`         // Text trợ giúp hiển thị dưới field
	DefaultValue string         `json:"defaultValue" bson:"defaultValue"` // Giá trị mặc định khi render
	Width        Width          `json:"width" bson:"width"`               // Gợi ý layout: full, half, third
	Order        int            `json:"order" bson:"order"`               // Vị trí trong collection, 0-based, liên tục
}

// NewFieldDefinition tạo một FieldDefinition mới với ID sinh tự động và các giá trị mặc định.
//
// Parameters:
// - t: Loại field (phải thuộc catalog)
// - label: Nhãn hiển thị
//
// Returns:
// - FieldDefinition: Field mới với Options rỗng, Width full, Order 0
func NewFieldDefinition(t fieldtype.Type, label string) FieldDefinition {
	return FieldDefinition{
		ID:      uuid.NewString(),
		Label:   label,
		Type:    t,
		Options: []string{},
		Width:   WidthFull,
	}
}

// Clone tạo bản sao sâu của field (copy riêng slice Options).
// ID được giữ nguyên; caller tự sinh ID mới khi cần identity mới.
func (f FieldDefinition) Clone() FieldDefinition {
	out := f
	out.Options = make([]string, len(f.Options))
	copy(out.Options, f.Options)
	return out
}

// IsLayout kiểm tra field có phải layout pseudo-field không (section, divider).
func (f FieldDefinition) IsLayout() bool {
	return fieldtype.IsLayout(f.Type)
}

// fieldNamePattern: machine key chỉ gồm chữ thường, số và dấu gạch dưới.
var fieldNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// NormalizeFieldName chuẩn hóa tên field thành machine key:
// mọi chuỗi whitespace liên tiếp được thay bằng một dấu "_", kết quả lowercase.
// Hàm này idempotent: normalize(normalize(x)) == normalize(x).
func NormalizeFieldName(name string) string {
	parts := strings.Fields(name)
	return strings.ToLower(strings.Join(parts, "_"))
}

// ValidateFieldName kiểm tra tên field sau chuẩn hóa.
//
// Parameters:
// - name: Tên field đã chuẩn hóa
// - existing: Danh sách tên của các field khác trong cùng collection
//
// Returns:
// - error: common.ErrFormInvalidCharacters nếu tên rỗng hoặc chứa ký tự không hợp lệ,
// common.ErrFormDuplicateName nếu tên trùng với field khác, nil nếu hợp lệ
func ValidateFieldName(name string, existing []string) error {
	if name == "" || !fieldNamePattern.MatchString(name) {
		return common.ErrFormInvalidCharacters
	}
	for _, other := range existing {
		if other == name {
			return common.ErrFormDuplicateName
		}
	}
	return nil
}

// Renumber gán lại Order = index cho toàn bộ mảng, đảm bảo dải 0..n-1 liên tục.
// Sửa trực tiếp trên mảng được truyền vào.
func Renumber(fields []FieldDefinition) {
	for i := range fields {
		fields[i].Order = i
	}
}

// SortAndRenumber sắp xếp mảng theo Order lưu trong DB rồi đánh số lại 0..n-1.
// Order lưu trong DB chỉ là gợi ý (backend có thể trả row không theo thứ tự,
// hoặc dữ liệu cũ có gap); vị trí mảng sau sort mới là ground truth.
func SortAndRenumber(fields []FieldDefinition) {
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})
	Renumber(fields)
}

// CloneAll tạo bản sao sâu của cả collection.
func CloneAll(fields []FieldDefinition) []FieldDefinition {
	out := make([]FieldDefinition, len(fields))
	for i, f := range fields {
		out[i] = f.Clone()
	}
	return out
}
