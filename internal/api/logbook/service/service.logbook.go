// Package logbooksvc - service cho domain logbook.
package logbooksvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/base/service"
	formsvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/service"
	logbookmodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/logbook/models"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/collector"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/global"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/logger"
)

// LogEntryService xử lý submit và truy vấn bản ghi nhật ký.
type LogEntryService struct {
	*basesvc.BaseServiceMongoImpl[logbookmodels.LogEntry]
	configService *formsvc.FormConfigService
}

// NewLogEntryService tạo mới LogEntryService
func NewLogEntryService() (*LogEntryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.LogEntries)
	if !exist {
		return nil, fmt.Errorf("failed to get log_entries collection")
	}
	configService, err := formsvc.NewFormConfigService()
	if err != nil {
		return nil, err
	}
	return &LogEntryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[logbookmodels.LogEntry](collection),
		configService:        configService,
	}, nil
}

// Submit nạp cấu hình form đang hoạt động của facility, ép kiểu và kiểm tra
// giá trị submit, rồi lưu bản ghi nhật ký.
//
// Parameters:
//   - ctx: context xử lý request
//   - facilityID: facility đang thao tác
//   - formType: loại form (resurface, blade_change, ...)
//   - values: giá trị thô theo tên field
//   - submittedBy: user submit (nil nếu không xác định)
//
// Returns:
//   - *logbookmodels.LogEntry: bản ghi đã lưu
//   - []collector.FieldError: lỗi theo từng field bắt buộc (nil nếu hợp lệ)
//   - error: lỗi hệ thống hoặc lỗi submit
func (s *LogEntryService) Submit(ctx context.Context, facilityID primitive.ObjectID, formType string, values map[string]interface{}, submittedBy *primitive.ObjectID) (*logbookmodels.LogEntry, []collector.FieldError, error) {
	fields, err := s.configService.Load(ctx, facilityID, formType)
	if err != nil {
		return nil, nil, err
	}
	if len(fields) == 0 {
		return nil, nil, common.NewError(common.ErrCodeFormSubmission, fmt.Sprintf("Form %s chưa được cấu hình cho cơ sở này", formType), common.StatusBadRequest, nil)
	}

	record, fieldErrs := collector.Collect(fields, values)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	now := time.Now().UnixMilli()
	entry := logbookmodels.LogEntry{
		FacilityID:  facilityID,
		FormType:    formType,
		Data:        record,
		SubmittedBy: submittedBy,
		SubmittedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.InsertOne(ctx, entry)
	if err != nil {
		return nil, nil, common.ErrFormPersistence
	}
	logger.WithModuleAndCollection("logbook", global.MongoDB_ColNames.LogEntries).
		WithField("form_type", formType).
		Debug("Đã lưu bản ghi nhật ký")
	return &created, nil, nil
}

// ListByFormType trả về các bản ghi nhật ký của một facility theo loại form,
// mới nhất trước.
func (s *LogEntryService) ListByFormType(ctx context.Context, facilityID primitive.ObjectID, formType string, limit int64) ([]logbookmodels.LogEntry, error) {
	filter := bson.M{
		"facilityId": facilityID,
		"formType":   formType,
	}
	opts := options.Find().SetSort(bson.M{"submittedAt": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return s.Find(ctx, filter, opts)
}
