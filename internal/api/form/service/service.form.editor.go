package formsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/editor"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
)

// mutateFields load cấu hình hiện tại, mở một phiên chỉnh sửa, chạy thao tác
// rồi commit lại toàn bộ field set. Phiên chỉnh sửa sống trong phạm vi một
// request; lỗi ở bất kỳ bước nào thì cấu hình đã commit không thay đổi.
func (s *FormConfigService) mutateFields(ctx context.Context, facilityID primitive.ObjectID, formType string, op func(*editor.EditSession) error) ([]schema.FieldDefinition, error) {
	fields, err := s.Load(ctx, facilityID, formType)
	if err != nil {
		return nil, err
	}

	session := editor.NewSession(fields)
	if err := op(session); err != nil {
		return nil, err
	}

	result := session.Fields()
	if err := s.ReplaceAll(ctx, facilityID, formType, result); err != nil {
		return nil, err
	}
	return result, nil
}

// InsertField thêm một field mới từ palette vào cuối cấu hình của (facility, formType).
//
// Parameters:
// - ctx: Context
// - facilityID: ID của facility
// - formType: Loại form
// - t: Loại field từ palette
// - label: Nhãn hiển thị ban đầu
//
// Returns:
// - schema.FieldDefinition: Field vừa thêm
// - []schema.FieldDefinition: Toàn bộ cấu hình sau khi thêm
// - error: Lỗi loại field không hợp lệ hoặc lỗi persistence
func (s *FormConfigService) InsertField(ctx context.Context, facilityID primitive.ObjectID, formType string, t fieldtype.Type, label string) (schema.FieldDefinition, []schema.FieldDefinition, error) {
	var inserted schema.FieldDefinition
	fields, err := s.mutateFields(ctx, facilityID, formType, func(session *editor.EditSession) error {
		var opErr error
		inserted, opErr = session.Insert(t, label)
		return opErr
	})
	if err != nil {
		return schema.FieldDefinition{}, nil, err
	}
	return inserted, fields, nil
}

// ReorderField di chuyển một field đến vị trí targetIndex và commit thứ tự mới.
func (s *FormConfigService) ReorderField(ctx context.Context, facilityID primitive.ObjectID, formType string, fieldID string, targetIndex int) ([]schema.FieldDefinition, error) {
	return s.mutateFields(ctx, facilityID, formType, func(session *editor.EditSession) error {
		return session.Reorder(fieldID, targetIndex)
	})
}

// DeleteField xóa một field khỏi cấu hình và commit.
func (s *FormConfigService) DeleteField(ctx context.Context, facilityID primitive.ObjectID, formType string, fieldID string) ([]schema.FieldDefinition, error) {
	return s.mutateFields(ctx, facilityID, formType, func(session *editor.EditSession) error {
		return session.Delete(fieldID)
	})
}

// PatchField shallow-merge một patch thuộc tính vào field theo ID rồi commit.
//
// Returns:
// - schema.FieldDefinition: Field sau khi sửa
// - []schema.FieldDefinition: Toàn bộ cấu hình sau khi sửa
// - error: common.ErrNotFound, lỗi validate tên hoặc lỗi persistence
func (s *FormConfigService) PatchField(ctx context.Context, facilityID primitive.ObjectID, formType string, fieldID string, patch editor.FieldPatch) (schema.FieldDefinition, []schema.FieldDefinition, error) {
	var updated schema.FieldDefinition
	fields, err := s.mutateFields(ctx, facilityID, formType, func(session *editor.EditSession) error {
		var opErr error
		updated, opErr = session.UpdateProperties(fieldID, patch)
		return opErr
	})
	if err != nil {
		return schema.FieldDefinition{}, nil, err
	}
	return updated, fields, nil
}

// DuplicateField nhân bản một field (ID mới, label " (Copy)", name "_copy") rồi commit.
func (s *FormConfigService) DuplicateField(ctx context.Context, facilityID primitive.ObjectID, formType string, fieldID string) (schema.FieldDefinition, []schema.FieldDefinition, error) {
	var clone schema.FieldDefinition
	fields, err := s.mutateFields(ctx, facilityID, formType, func(session *editor.EditSession) error {
		var opErr error
		clone, opErr = session.Duplicate(fieldID)
		return opErr
	})
	if err != nil {
		return schema.FieldDefinition{}, nil, err
	}
	return clone, fields, nil
}
