// Package fieldtype định nghĩa catalog đóng (closed catalog) các loại field của form engine.
// Mỗi loại field được khai báo bằng một Descriptor trong bảng tĩnh: thêm loại field mới
// chỉ cần thêm một entry vào bảng, không cần sửa editor hay template store.
package fieldtype

// Type là định danh của một loại field trong catalog.
type Type string

// Danh sách các loại field được hỗ trợ.
const (
	TypeText     Type = "text"     // Input text một dòng
	TypeEmail    Type = "email"    // Input email
	TypeNumber   Type = "number"   // Input số
	TypePhone    Type = "phone"    // Input số điện thoại
	TypeURL      Type = "url"      // Input đường dẫn
	TypeTextarea Type = "textarea" // Input text nhiều dòng
	TypeSelect   Type = "select"   // Dropdown chọn một giá trị (cần options)
	TypeRadio    Type = "radio"    // Radio group (cần options)
	TypeCheckbox Type = "checkbox" // Checkbox đơn
	TypeToggle   Type = "toggle"   // Công tắc bật/tắt
	TypeDate     Type = "date"     // Chọn ngày
	TypeTime     Type = "time"     // Chọn giờ
	TypeFile     Type = "file"     // Upload file
	TypeSlider   Type = "slider"   // Thanh trượt
	TypeSection  Type = "section"  // Tiêu đề section (layout, không nhận dữ liệu)
	TypeDivider  Type = "divider"  // Đường kẻ phân cách (layout, không nhận dữ liệu)
)

// Category nhóm các loại field để hiển thị trong palette.
type Category string

const (
	CategoryText      Category = "text"      // Nhóm nhập liệu văn bản và số
	CategorySelection Category = "selection" // Nhóm chọn giá trị
	CategoryDateTime  Category = "datetime"  // Nhóm ngày giờ
	CategoryAdvanced  Category = "advanced"  // Nhóm nâng cao
	CategoryLayout    Category = "layout"    // Nhóm trình bày, không sinh dữ liệu
)

// ValueKind xác định kiểu giá trị khi thu thập dữ liệu submit.
type ValueKind int

const (
	ValueString ValueKind = iota // Giá trị được ép về string
	ValueNumber                  // Giá trị được ép về float64
	ValueBool                    // Giá trị được ép về bool
)

// Descriptor mô tả hành vi runtime của một loại field.
type Descriptor struct {
	Type            Type      // Định danh loại field
	Label           string    // Tên hiển thị trong palette
	Category        Category  // Nhóm hiển thị
	Widget          string    // Loại widget render ở runtime
	RequiresOptions bool      // true nếu loại field bắt buộc có danh sách options
	ValueKind       ValueKind // Kiểu giá trị khi submit
	IsLayout        bool      // true nếu là layout pseudo-field (loại khỏi record submit)
}

// registry là bảng tĩnh chứa toàn bộ catalog. Thứ tự dùng cho palette.
var registry = []Descriptor{
	{Type: TypeText, Label: "Text", Category: CategoryText, Widget: "input"},
	{Type: TypeEmail, Label: "Email", Category: CategoryText, Widget: "input"},
	{Type: TypeNumber, Label: "Number", Category: CategoryText, Widget: "input", ValueKind: ValueNumber},
	{Type: TypePhone, Label: "Phone", Category: CategoryText, Widget: "input"},
	{Type: TypeURL, Label: "URL", Category: CategoryText, Widget: "input"},
	{Type: TypeTextarea, Label: "Textarea", Category: CategoryText, Widget: "textarea"},
	{Type: TypeSelect, Label: "Select", Category: CategorySelection, Widget: "select", RequiresOptions: true},
	{Type: TypeRadio, Label: "Radio", Category: CategorySelection, Widget: "radio-group", RequiresOptions: true},
	{Type: TypeCheckbox, Label: "Checkbox", Category: CategorySelection, Widget: "checkbox", ValueKind: ValueBool},
	{Type: TypeToggle, Label: "Toggle", Category: CategorySelection, Widget: "toggle"},
	{Type: TypeDate, Label: "Date", Category: CategoryDateTime, Widget: "date-picker"},
	{Type: TypeTime, Label: "Time", Category: CategoryDateTime, Widget: "time-picker"},
	{Type: TypeFile, Label: "File", Category: CategoryAdvanced, Widget: "file-upload"},
	{Type: TypeSlider, Label: "Slider", Category: CategoryAdvanced, Widget: "slider"},
	{Type: TypeSection, Label: "Section", Category: CategoryLayout, Widget: "section-header", IsLayout: true},
	{Type: TypeDivider, Label: "Divider", Category: CategoryLayout, Widget: "divider", IsLayout: true},
}

// index để tra cứu O(1) theo Type, build một lần khi init.
var index = func() map[Type]Descriptor {
	m := make(map[Type]Descriptor, len(registry))
	for _, d := range registry {
		m[d.Type] = d
	}
	return m
}()

// Lookup tra cứu Descriptor theo Type.
//
// Parameters:
// - t: Loại field cần tra cứu
//
// Returns:
// - Descriptor: Mô tả loại field
// - bool: false nếu Type không có trong catalog
func Lookup(t Type) (Descriptor, bool) {
	d, ok := index[t]
	return d, ok
}

// All trả về toàn bộ catalog theo thứ tự palette.
// Slice trả về là bản copy, caller có thể sửa thoải mái.
func All() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// ByCategory trả về các Descriptor thuộc một nhóm, giữ nguyên thứ tự palette.
func ByCategory(c Category) []Descriptor {
	var out []Descriptor
	for _, d := range registry {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// IsValid kiểm tra một Type có trong catalog không.
func IsValid(t Type) bool {
	_, ok := index[t]
	return ok
}

// IsLayout kiểm tra một Type có phải layout pseudo-field không.
// Layout field tham gia ordering như field thường nhưng bị loại khỏi record submit
// và không tham gia validate required.
func IsLayout(t Type) bool {
	d, ok := index[t]
	return ok && d.IsLayout
}

// RequiresOptions kiểm tra một Type có bắt buộc danh sách options không.
func RequiresOptions(t Type) bool {
	d, ok := index[t]
	return ok && d.RequiresOptions
}
