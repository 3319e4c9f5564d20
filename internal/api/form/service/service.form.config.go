// Package formsvc - service cho domain form: cấu hình đang hoạt động,
// thư viện template và lịch sử phiên bản.
package formsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/base/service"
	formmodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/models"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/global"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/utility"
)

// FormConfigService quản lý cấu hình field đang hoạt động theo (facility, formType).
// Mỗi field một document trong form_fields, xóa mềm qua isActive.
type FormConfigService struct {
	*basesvc.BaseServiceMongoImpl[formmodels.FieldRow]
}

// NewFormConfigService tạo mới FormConfigService
func NewFormConfigService() (*FormConfigService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FormFields)
	if !exist {
		return nil, fmt.Errorf("failed to get form_fields collection")
	}
	return &FormConfigService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[formmodels.FieldRow](collection),
	}, nil
}

// Load đọc cấu hình đang hoạt động của (facility, formType).
// Không bao giờ trả lỗi khi chưa có cấu hình: trả về collection rỗng để caller
// hiểu là "dùng mặc định". Order lưu trong DB chỉ là gợi ý: kết quả luôn được
// sort lại theo Order rồi đánh số lại 0..n-1.
//
// Parameters:
// - ctx: Context
// - facilityID: ID của facility
// - formType: Loại form
//
// Returns:
// - []schema.FieldDefinition: Collection theo đúng thứ tự, rỗng nếu chưa cấu hình
// - error: Lỗi query (không bao gồm trường hợp không có dữ liệu)
func (s *FormConfigService) Load(ctx context.Context, facilityID primitive.ObjectID, formType string) ([]schema.FieldDefinition, error) {
	rows, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{
		"facilityId": facilityID,
		"formType":   formType,
		"isActive":   true,
	}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return []schema.FieldDefinition{}, nil
		}
		return nil, err
	}

	fields := make([]schema.FieldDefinition, len(rows))
	for i, row := range rows {
		fields[i] = row.ToFieldDefinition()
	}
	schema.SortAndRenumber(fields)
	return fields, nil
}

// ReplaceAll thay thế toàn bộ cấu hình của (facility, formType) bằng field set mới.
// Thực hiện theo kiểu soft-delete rồi insert: row cũ được đánh dấu isActive=false
// kèm marker replacedAt riêng của batch, row mới insert với isActive=true. Nếu
// insert thất bại, các row cũ được khôi phục theo marker đó và trả về lỗi
// persistence; cấu hình đã commit không bao giờ bị mất giữa chừng. Marker phải
// là field riêng vì updatedAt bị tầng base service ghi đè trên mọi update.
//
// Parameters:
// - ctx: Context
// - facilityID: ID của facility
// - formType: Loại form
// - fields: Field set mới, thứ tự mảng là ground truth
//
// Returns:
// - error: common.ErrFormPersistence nếu ghi thất bại
func (s *FormConfigService) ReplaceAll(ctx context.Context, facilityID primitive.ObjectID, formType string, fields []schema.FieldDefinition) error {
	fields = schema.CloneAll(fields)
	schema.Renumber(fields)

	replaceMarker := utility.CurrentTimeInMilli()
	activeFilter := bson.M{
		"facilityId": facilityID,
		"formType":   formType,
		"isActive":   true,
	}

	// Đánh dấu row cũ là đã xóa, kèm marker của batch để khôi phục được khi cần
	_, err := s.BaseServiceMongoImpl.UpdateMany(ctx, activeFilter, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isActive":   false,
			"replacedAt": replaceMarker,
		},
	}, nil)
	if err != nil {
		return common.NewError(
			common.ErrCodeFormTemplate,
			fmt.Sprintf("Lỗi khi thay thế cấu hình form: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}

	if len(fields) == 0 {
		return nil
	}

	rows := make([]formmodels.FieldRow, len(fields))
	for i, f := range fields {
		rows[i] = formmodels.NewFieldRow(facilityID, formType, f)
	}

	if _, err := s.BaseServiceMongoImpl.InsertMany(ctx, rows); err != nil {
		// Khôi phục đúng các row của batch này để cấu hình không bị mất
		_, restoreErr := s.BaseServiceMongoImpl.UpdateMany(ctx, bson.M{
			"facilityId": facilityID,
			"formType":   formType,
			"isActive":   false,
			"replacedAt": replaceMarker,
		}, &basesvc.UpdateData{
			Set:   map[string]interface{}{"isActive": true},
			Unset: map[string]interface{}{"replacedAt": ""},
		}, nil)
		if restoreErr != nil {
			return common.NewError(
				common.ErrCodeFormTemplate,
				fmt.Sprintf("Ghi cấu hình thất bại và không khôi phục được cấu hình cũ: %v", err),
				common.StatusInternalServerError,
				err,
			)
		}
		return common.ErrFormPersistence
	}

	return nil
}

// PurgeInactive xóa hẳn các row đã soft-delete của một (facility, formType).
// Dùng cho dọn dẹp định kỳ, không nằm trên đường ghi chính.
func (s *FormConfigService) PurgeInactive(ctx context.Context, facilityID primitive.ObjectID, formType string) (int64, error) {
	return s.BaseServiceMongoImpl.DeleteMany(ctx, bson.M{
		"facilityId": facilityID,
		"formType":   formType,
		"isActive":   false,
	})
}
