// Package collector cài đặt phần thu thập dữ liệu runtime của form engine:
// seed giá trị ban đầu cho widget, ép kiểu theo loại field và validate required
// khi submit. Layout pseudo-field (section, divider) bị loại hoàn toàn khỏi record.
package collector

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
)

// FieldError là lỗi validate gắn với một field cụ thể khi submit.
type FieldError struct {
	Name    string `json:"name"`    // Machine key của field lỗi
	Message string `json:"message"` // Mô tả lỗi cho người dùng
}

// Error implement interface error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// MissingRequiredField tạo FieldError cho field bắt buộc bị bỏ trống.
func MissingRequiredField(name string) FieldError {
	return FieldError{Name: name, Message: "Trường này là bắt buộc"}
}

// Seed dựng map giá trị ban đầu cho các widget: ưu tiên giá trị đã thu thập trước đó
// (initial), thiếu thì lấy DefaultValue của field. Layout field bị bỏ qua.
//
// Parameters:
// - fields: Collection đã commit, theo đúng thứ tự
// - initial: Record giá trị đã thu thập trước đó, có thể nil
//
// Returns:
// - map[string]interface{}: Map name → giá trị khởi tạo
func Seed(fields []schema.FieldDefinition, initial map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		if f.IsLayout() {
			continue
		}
		if initial != nil {
			if v, ok := initial[f.Name]; ok {
				out[f.Name] = v
				continue
			}
		}
		if f.DefaultValue != "" {
			out[f.Name] = f.DefaultValue
		}
	}
	return out
}

// Collect lắp record submit {name: value} từ giá trị thô của các widget.
// Mỗi giá trị được ép kiểu theo ValueKind trong catalog (number → float64,
// checkbox → bool, còn lại → string). Validate all-or-nothing: hoặc trả về
// record hoàn chỉnh, hoặc danh sách lỗi không rỗng — không bao giờ lặng lẽ
// bỏ field lỗi.
//
// Parameters:
// - fields: Collection đã commit
// - values: Giá trị thô từ widget, key theo field name
//
// Returns:
// - map[string]interface{}: Record hoàn chỉnh nếu hợp lệ, nil nếu có lỗi
// - []FieldError: Danh sách lỗi theo field, nil nếu hợp lệ
func Collect(fields []schema.FieldDefinition, values map[string]interface{}) (map[string]interface{}, []FieldError) {
	record := make(map[string]interface{}, len(fields))
	var errs []FieldError

	for _, f := range fields {
		if f.IsLayout() {
			continue
		}

		raw, present := values[f.Name]
		if s, isStr := raw.(string); isStr && strings.TrimSpace(s) == "" {
			// Chuỗi trắng coi như chưa nhập, kể cả với field number/checkbox
			present = false
		}
		value, ok := coerce(f.Type, raw, present)
		if !ok {
			errs = append(errs, FieldError{
				Name:    f.Name,
				Message: fmt.Sprintf("Giá trị không đúng kiểu %s", f.Type),
			})
			continue
		}

		if f.IsRequired && isEmpty(value, present) {
			errs = append(errs, MissingRequiredField(f.Name))
			continue
		}

		record[f.Name] = value
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return record, nil
}

// coerce ép giá trị thô về kiểu runtime của loại field.
// Giá trị vắng mặt được quy về zero value của kiểu đích.
func coerce(t fieldtype.Type, raw interface{}, present bool) (interface{}, bool) {
	desc, known := fieldtype.Lookup(t)
	kind := fieldtype.ValueString
	if known {
		kind = desc.ValueKind
	}

	switch kind {
	case fieldtype.ValueNumber:
		if !present || raw == nil {
			return float64(0), true
		}
		return toFloat(raw)
	case fieldtype.ValueBool:
		if !present || raw == nil {
			return false, true
		}
		return toBool(raw)
	default:
		if !present || raw == nil {
			return "", true
		}
		return toString(raw), true
	}
}

// isEmpty kiểm tra giá trị đã ép kiểu có bị coi là "trống" với field required không.
// Checkbox required chưa tick (false) cũng tính là trống.
func isEmpty(value interface{}, present bool) bool {
	if !present {
		return true
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case bool:
		return !v
	case float64:
		return false
	default:
		return value == nil
	}
}

// toFloat ép giá trị thô về float64.
func toFloat(raw interface{}) (interface{}, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	case string:
		if strings.TrimSpace(v) == "" {
			return float64(0), true
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, false
		}
		return f, true
	default:
		return nil, false
	}
}

// toBool ép giá trị thô về bool.
func toBool(raw interface{}) (interface{}, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "on":
			return true, true
		case "false", "0", "no", "off", "":
			return false, true
		default:
			return nil, false
		}
	case float64:
		return v != 0, true
	case json.Number:
		return v.String() != "0", true
	default:
		return nil, false
	}
}

// toString ép giá trị thô về string.
func toString(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
