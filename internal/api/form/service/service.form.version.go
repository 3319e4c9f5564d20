package formsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/base/service"
	formmodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/models"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/global"
)

// TemplateVersionService quản lý log append-only các snapshot của template.
type TemplateVersionService struct {
	*basesvc.BaseServiceMongoImpl[formmodels.TemplateVersion]
}

// NewTemplateVersionService tạo mới TemplateVersionService
func NewTemplateVersionService() (*TemplateVersionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FormTemplateVersions)
	if !exist {
		return nil, fmt.Errorf("failed to get form_template_versions collection")
	}
	return &TemplateVersionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[formmodels.TemplateVersion](collection),
	}, nil
}

// Capture append một snapshot cho template tại version đã cho.
// Gọi đúng một lần cho mỗi lần save thành công; index unique (templateId, version)
// chặn capture trùng.
//
// Parameters:
// - ctx: Context
// - templateID: ID của template
// - version: Version của template tại thời điểm capture
// - fields: Snapshot đầy đủ của field collection
// - changedBy: User thực hiện save, có thể nil
// - changelog: Mô tả thay đổi, có thể rỗng
//
// Returns:
// - error: Lỗi nếu insert thất bại
func (s *TemplateVersionService) Capture(ctx context.Context, templateID primitive.ObjectID, version int, fields []schema.FieldDefinition, changedBy *primitive.ObjectID, changelog string) error {
	snapshot := formmodels.TemplateVersion{
		TemplateID: templateID,
		Version:    version,
		Fields:     schema.CloneAll(fields),
		ChangedBy:  changedBy,
		Changelog:  changelog,
	}
	_, err := s.BaseServiceMongoImpl.InsertOne(ctx, snapshot)
	return err
}

// ListVersions trả về toàn bộ snapshot của template, version mới nhất trước.
func (s *TemplateVersionService) ListVersions(ctx context.Context, templateID primitive.ObjectID) ([]formmodels.TemplateVersion, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"templateId": templateID},
		options.Find().SetSort(bson.D{{Key: "version", Value: -1}}))
}

// Restore trả về field collection của một snapshot để caller dùng làm working
// collection mới. Không tự commit: muốn version cũ thành version hiện hành,
// caller save lại qua FormTemplateService (tạo version mới, giữ nguyên lịch sử).
//
// Parameters:
// - ctx: Context
// - templateID: ID của template
// - version: Version cần lấy
//
// Returns:
// - []schema.FieldDefinition: Snapshot của version đó
// - error: common.ErrNotFound nếu không có snapshot
func (s *TemplateVersionService) Restore(ctx context.Context, templateID primitive.ObjectID, version int) ([]schema.FieldDefinition, error) {
	snapshot, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{
		"templateId": templateID,
		"version":    version,
	}, nil)
	if err != nil {
		return nil, err
	}
	return schema.CloneAll(snapshot.Fields), nil
}
