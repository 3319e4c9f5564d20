// Package editor cài đặt phiên chỉnh sửa field collection của form builder.
// Mỗi EditSession là một state object độc lập do caller sở hữu, thao tác trên bản copy
// in-memory; mọi thay đổi chỉ được ghi xuống DB khi caller gọi template store.
//
// Bất biến quan trọng: sau mỗi thao tác, Order của toàn bộ field luôn là dải liên tục
// 0..n-1 trùng với vị trí mảng. Engine không bao giờ tin Order do caller cung cấp.
package editor

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
)

// nameCounter dùng để sinh tên field không trùng trong cùng một process.
var nameCounter atomic.Int64

// EditSession giữ trạng thái một phiên chỉnh sửa: field collection đang sửa
// và field đang được chọn trên properties panel (pure UI state, không persist).
type EditSession struct {
	fields     []schema.FieldDefinition
	selectedID string
}

// NewSession tạo phiên chỉnh sửa mới từ một collection đã load.
// Collection được copy sâu để mutation không ảnh hưởng dữ liệu gốc của caller.
func NewSession(fields []schema.FieldDefinition) *EditSession {
	s := &EditSession{fields: schema.CloneAll(fields)}
	schema.Renumber(s.fields)
	return s
}

// Fields trả về bản copy của collection hiện tại, Order đúng theo vị trí mảng.
func (s *EditSession) Fields() []schema.FieldDefinition {
	return schema.CloneAll(s.fields)
}

// Len trả về số field trong collection.
func (s *EditSession) Len() int {
	return len(s.fields)
}

// SelectedID trả về ID của field đang được chọn, chuỗi rỗng nếu không có.
func (s *EditSession) SelectedID() string {
	return s.selectedID
}

// Select đánh dấu một field được chọn cho properties panel.
// Chọn ID không tồn tại trong collection sẽ clear selection.
func (s *EditSession) Select(id string) {
	if s.indexOf(id) < 0 {
		s.selectedID = ""
		return
	}
	s.selectedID = id
}

// Insert thêm một field mới từ palette vào cuối collection.
// Field mới có ID mới, tên sinh tự động không trùng, Order = độ dài hiện tại.
//
// Parameters:
// - t: Loại field từ palette
// - label: Nhãn hiển thị ban đầu
//
// Returns:
// - schema.FieldDefinition: Field vừa thêm
// - error: common.ErrInvalidInput nếu loại field không thuộc catalog
func (s *EditSession) Insert(t fieldtype.Type, label string) (schema.FieldDefinition, error) {
	if !fieldtype.IsValid(t) {
		return schema.FieldDefinition{}, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Loại field '%s' không được hỗ trợ", t),
			common.StatusBadRequest,
			nil,
		)
	}

	field := schema.NewFieldDefinition(t, label)
	field.Name = s.generateName(t)
	field.Order = len(s.fields)
	s.fields = append(s.fields, field)
	s.selectedID = field.ID
	return field.Clone(), nil
}

// Reorder di chuyển field đến vị trí targetIndex (array move, không phải swap),
// sau đó đánh số lại Order 0..n-1.
// targetIndex ngoài biên được kẹp về [0, n-1].
//
// Parameters:
// - movedID: ID của field cần di chuyển
// - targetIndex: Vị trí đích trong mảng
//
// Returns:
// - error: common.ErrNotFound nếu không tìm thấy field
func (s *EditSession) Reorder(movedID string, targetIndex int) error {
	from := s.indexOf(movedID)
	if from < 0 {
		return common.ErrNotFound
	}

	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(s.fields)-1 {
		targetIndex = len(s.fields) - 1
	}
	if targetIndex == from {
		return nil
	}

	moved := s.fields[from]
	s.fields = append(s.fields[:from], s.fields[from+1:]...)
	s.fields = append(s.fields[:targetIndex], append([]schema.FieldDefinition{moved}, s.fields[targetIndex:]...)...)
	schema.Renumber(s.fields)
	return nil
}

// Delete xóa field theo ID và đánh số lại Order.
// Nếu field bị xóa đang được chọn trên properties panel thì clear selection.
//
// Parameters:
// - id: ID của field cần xóa
//
// Returns:
// - error: common.ErrNotFound nếu không tìm thấy field
func (s *EditSession) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return common.ErrNotFound
	}

	s.fields = append(s.fields[:idx], s.fields[idx+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
	schema.Renumber(s.fields)
	return nil
}

// FieldPatch chứa các thuộc tính có thể sửa qua properties panel.
// Field nil nghĩa là "không đổi" (shallow-merge).
type FieldPatch struct {
	Name         *string
	Label        *string
	Options      *[]string
	IsRequired   *bool
	Placeholder  *string
	HelpText     *string
	DefaultValue *string
	Width        *schema.Width
}

// UpdateProperties shallow-merge một patch vào field theo ID.
// Nếu Name được sửa, tên sẽ được chuẩn hóa và validate (ký tự hợp lệ, không trùng
// với field khác) trước khi lưu.
//
// Parameters:
// - id: ID của field cần sửa
// - patch: Các thuộc tính cần thay đổi
//
// Returns:
// - schema.FieldDefinition: Field sau khi sửa
// - error: common.ErrNotFound, common.ErrFormInvalidCharacters hoặc common.ErrFormDuplicateName
func (s *EditSession) UpdateProperties(id string, patch FieldPatch) (schema.FieldDefinition, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return schema.FieldDefinition{}, common.ErrNotFound
	}

	field := &s.fields[idx]

	if patch.Name != nil {
		name := schema.NormalizeFieldName(*patch.Name)
		if err := schema.ValidateFieldName(name, s.otherNames(id)); err != nil {
			return schema.FieldDefinition{}, err
		}
		field.Name = name
	}
	if patch.Label != nil {
		field.Label = *patch.Label
	}
	if patch.Options != nil {
		opts := make([]string, len(*patch.Options))
		copy(opts, *patch.Options)
		field.Options = opts
	}
	if patch.IsRequired != nil {
		field.IsRequired = *patch.IsRequired
	}
	if patch.Placeholder != nil {
		field.Placeholder = *patch.Placeholder
	}
	if patch.HelpText != nil {
		field.HelpText = *patch.HelpText
	}
	if patch.DefaultValue != nil {
		field.DefaultValue = *patch.DefaultValue
	}
	if patch.Width != nil {
		if !schema.IsValidWidth(*patch.Width) {
			return schema.FieldDefinition{}, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Width '%s' không hợp lệ, chỉ chấp nhận full, half, third", *patch.Width),
				common.StatusBadRequest,
				nil,
			)
		}
		field.Width = *patch.Width
	}

	return field.Clone(), nil
}

// Duplicate nhân bản một field: ID mới, label thêm " (Copy)", name thêm "_copy"
// (chuẩn hóa và chống trùng), append vào cuối collection với Order = độ dài.
//
// Parameters:
// - id: ID của field gốc
//
// Returns:
// - schema.FieldDefinition: Field bản sao
// - error: common.ErrNotFound nếu không tìm thấy field gốc
func (s *EditSession) Duplicate(id string) (schema.FieldDefinition, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return schema.FieldDefinition{}, common.ErrNotFound
	}

	clone := s.fields[idx].Clone()
	clone.ID = uuid.NewString()
	clone.Label = clone.Label + " (Copy)"
	clone.Name = s.uniqueName(schema.NormalizeFieldName(clone.Name + "_copy"))
	clone.Order = len(s.fields)
	s.fields = append(s.fields, clone)
	s.selectedID = clone.ID
	return clone.Clone(), nil
}

// indexOf tìm vị trí field theo ID, trả về -1 nếu không có.
func (s *EditSession) indexOf(id string) int {
	for i := range s.fields {
		if s.fields[i].ID == id {
			return i
		}
	}
	return -1
}

// otherNames trả về tên của mọi field trừ field có ID được truyền vào.
func (s *EditSession) otherNames(excludeID string) []string {
	names := make([]string, 0, len(s.fields))
	for i := range s.fields {
		if s.fields[i].ID != excludeID {
			names = append(names, s.fields[i].Name)
		}
	}
	return names
}

// generateName sinh tên field mới từ loại field, timestamp và counter để tránh trùng.
func (s *EditSession) generateName(t fieldtype.Type) string {
	base := fmt.Sprintf("%s_%d_%d", t, time.Now().UnixMilli(), nameCounter.Add(1))
	return s.uniqueName(schema.NormalizeFieldName(base))
}

// uniqueName đảm bảo tên không trùng trong collection bằng cách thêm hậu tố số.
func (s *EditSession) uniqueName(name string) string {
	existing := make(map[string]bool, len(s.fields))
	for i := range s.fields {
		existing[s.fields[i].Name] = true
	}
	if !existing[name] {
		return name
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d", name, i)
		if !existing[candidate] {
			return candidate
		}
	}
}
