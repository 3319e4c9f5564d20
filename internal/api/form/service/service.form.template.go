package formsvc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/base/service"
	formmodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/models"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/global"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/logger"
)

// FormTemplateService quản lý thư viện template.
// Fields của mỗi template nằm trọn trong một document nên "replace all" là một
// write nguyên tử; version tăng 1 sau mỗi lần save và mỗi save capture đúng một
// snapshot qua TemplateVersionService.
type FormTemplateService struct {
	*basesvc.BaseServiceMongoImpl[formmodels.FormTemplate]
	versionService *TemplateVersionService
}

// NewFormTemplateService tạo mới FormTemplateService
func NewFormTemplateService() (*FormTemplateService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FormTemplates)
	if !exist {
		return nil, fmt.Errorf("failed to get form_templates collection")
	}
	versionService, err := NewTemplateVersionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create template version service: %w", err)
	}
	return &FormTemplateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[formmodels.FormTemplate](collection),
		versionService:       versionService,
	}, nil
}

// Save commit field collection mới cho template: thay toàn bộ fields, tăng version,
// rồi capture đúng một snapshot sau khi write thành công. Capture không bao giờ
// chạy khi write thất bại; capture thất bại không rollback save (snapshot thiếu
// được log lại, template vẫn là nguồn sự thật).
//
// Parameters:
// - ctx: Context
// - templateID: ID của template
// - fields: Field collection mới, thứ tự mảng là ground truth
// - changedBy: User thực hiện save, có thể nil
// - changelog: Mô tả thay đổi, có thể rỗng
//
// Returns:
// - formmodels.FormTemplate: Template sau khi save (version mới)
// - error: common.ErrNotFound nếu template không tồn tại, lỗi persistence nếu ghi thất bại
func (s *FormTemplateService) Save(ctx context.Context, templateID primitive.ObjectID, fields []schema.FieldDefinition, changedBy *primitive.ObjectID, changelog string) (formmodels.FormTemplate, error) {
	var zero formmodels.FormTemplate

	template, err := s.BaseServiceMongoImpl.FindOneById(ctx, templateID)
	if err != nil {
		return zero, err
	}

	fields = schema.CloneAll(fields)
	schema.Renumber(fields)
	newVersion := template.Version + 1

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, templateID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"fields":  fields,
			"version": newVersion,
		},
	})
	if err != nil {
		return zero, common.ErrFormPersistence
	}

	// Capture đúng một snapshot, chỉ sau khi write thành công
	if err := s.versionService.Capture(ctx, templateID, newVersion, fields, changedBy, changelog); err != nil {
		logger.GetErrorLogger().Errorf("Capture snapshot version %d cho template %s thất bại: %v", newVersion, templateID.Hex(), err)
	}

	return updated, nil
}

// Duplicate nhân bản template: copy sâu fields (mỗi field một ID mới, giữ nguyên
// Order), version về 1, isSystemTemplate về false.
//
// Parameters:
// - ctx: Context
// - templateID: ID của template gốc
// - newName: Tên template mới
// - createdBy: User thực hiện, có thể nil
//
// Returns:
// - formmodels.FormTemplate: Template bản sao
// - error: common.ErrNotFound nếu template gốc không tồn tại
func (s *FormTemplateService) Duplicate(ctx context.Context, templateID primitive.ObjectID, newName string, createdBy *primitive.ObjectID) (formmodels.FormTemplate, error) {
	var zero formmodels.FormTemplate

	source, err := s.BaseServiceMongoImpl.FindOneById(ctx, templateID)
	if err != nil {
		return zero, err
	}

	fields := schema.CloneAll(source.Fields)
	for i := range fields {
		fields[i].ID = uuid.NewString()
	}
	schema.Renumber(fields)

	copyTemplate := formmodels.FormTemplate{
		FacilityID:       source.FacilityID,
		Name:             newName,
		FormType:         source.FormType,
		Description:      source.Description,
		Fields:           fields,
		Version:          1,
		IsSystemTemplate: false,
		CreatedBy:        createdBy,
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, copyTemplate)
}

// DeleteById xóa template. Template hệ thống (isSystemTemplate=true) không thể xóa.
// Snapshot version của template được dọn sau khi template xóa thành công.
func (s *FormTemplateService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := s.BaseServiceMongoImpl.DeleteById(ctx, id); err != nil {
		return err
	}

	// Dọn snapshot; thất bại không chặn vì template đã xóa
	if _, err := s.versionService.DeleteMany(ctx, bson.M{"templateId": id}); err != nil {
		logger.GetErrorLogger().Errorf("Dọn snapshot của template %s thất bại: %v", id.Hex(), err)
	}
	return nil
}

// ApplyToConfig áp dụng fields của template vào cấu hình đang hoạt động của
// (facility, formType). Mỗi field nhận ID mới để identity không rò rỉ từ thư viện
// sang cấu hình.
func (s *FormTemplateService) ApplyToConfig(ctx context.Context, configService *FormConfigService, templateID primitive.ObjectID, facilityID primitive.ObjectID) (formmodels.FormTemplate, error) {
	var zero formmodels.FormTemplate

	template, err := s.BaseServiceMongoImpl.FindOneById(ctx, templateID)
	if err != nil {
		return zero, err
	}

	fields := schema.CloneAll(template.Fields)
	for i := range fields {
		fields[i].ID = uuid.NewString()
	}

	if err := configService.ReplaceAll(ctx, facilityID, template.FormType, fields); err != nil {
		return zero, err
	}
	return template, nil
}
