// Package initsvc chứa InitService dùng để khởi tạo dữ liệu ban đầu
// (các template hệ thống cho thư viện form).
// Tách ra package riêng để tránh import cycle giữa form/service và cmd/server.
package initsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/base/service"
	formmodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/models"
	formsvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/service"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/logger"
)

// InitService là cấu trúc chứa các phương thức khởi tạo dữ liệu ban đầu cho hệ thống.
// Các template hệ thống được seed idempotent: chạy lại không tạo bản ghi trùng.
type InitService struct {
	templateService *formsvc.FormTemplateService // Service xử lý template form
}

// NewInitService tạo mới InitService
func NewInitService() (*InitService, error) {
	templateService, err := formsvc.NewFormTemplateService()
	if err != nil {
		return nil, fmt.Errorf("failed to create form template service: %w", err)
	}
	return &InitService{
		templateService: templateService,
	}, nil
}

// seedField tạo một FieldDefinition cho template hệ thống.
func seedField(t fieldtype.Type, name string, label string, required bool, opts []string, width schema.Width) schema.FieldDefinition {
	f := schema.NewFieldDefinition(t, label)
	f.Name = name
	f.IsRequired = required
	if opts != nil {
		f.Options = opts
	}
	if schema.IsValidWidth(width) {
		f.Width = width
	}
	return f
}

// systemTemplateSeeds trả về danh sách template hệ thống mặc định cho
// nghiệp vụ vận hành sân băng.
func systemTemplateSeeds() []formmodels.FormTemplate {
	resurfaceFields := []schema.FieldDefinition{
		seedField(fieldtype.TypeSection, "shift_info", "Thông tin ca làm", false, nil, schema.WidthFull),
		seedField(fieldtype.TypeText, "operator_name", "Người vận hành", true, nil, schema.WidthHalf),
		seedField(fieldtype.TypeTime, "resurface_time", "Giờ làm mặt băng", true, nil, schema.WidthHalf),
		seedField(fieldtype.TypeSelect, "machine_used", "Máy sử dụng", true, []string{"Zamboni 1", "Zamboni 2", "Olympia"}, schema.WidthHalf),
		seedField(fieldtype.TypeNumber, "ice_depth_mm", "Độ dày băng (mm)", false, nil, schema.WidthHalf),
		seedField(fieldtype.TypeNumber, "water_temp_c", "Nhiệt độ nước (°C)", false, nil, schema.WidthHalf),
		seedField(fieldtype.TypeToggle, "edger_used", "Có dùng máy cạnh", false, nil, schema.WidthHalf),
		seedField(fieldtype.TypeTextarea, "notes", "Ghi chú", false, nil, schema.WidthFull),
	}

	bladeChangeFields := []schema.FieldDefinition{
		seedField(fieldtype.TypeText, "changed_by", "Người thay lưỡi", true, nil, schema.WidthHalf),
		seedField(fieldtype.TypeDate, "change_date", "Ngày thay", true, nil, schema.WidthHalf),
		seedField(fieldtype.TypeNumber, "blade_hours", "Số giờ lưỡi cũ đã chạy", false, nil, schema.WidthHalf),
		seedField(fieldtype.TypeSelect, "blade_condition", "Tình trạng lưỡi cũ", false, []string{"Tốt", "Mòn nhẹ", "Mòn nặng", "Hỏng"}, schema.WidthHalf),
		seedField(fieldtype.TypeDivider, "blade_divider", "", false, nil, schema.WidthFull),
		seedField(fieldtype.TypeTextarea, "notes", "Ghi chú", false, nil, schema.WidthFull),
	}

	incidentFields := []schema.FieldDefinition{
		seedField(fieldtype.TypeText, "reported_by", "Người báo cáo", true, nil, schema.WidthHalf),
		seedField(fieldtype.TypeDate, "incident_date", "Ngày xảy ra", true, nil, schema.WidthHalf),
		seedField(fieldtype.TypeTime, "incident_time", "Giờ xảy ra", false, nil, schema.WidthHalf),
		seedField(fieldtype.TypeText, "location", "Vị trí", false, nil, schema.WidthHalf),
		seedField(fieldtype.TypeRadio, "severity", "Mức độ", true, []string{"Nhẹ", "Trung bình", "Nghiêm trọng"}, schema.WidthFull),
		seedField(fieldtype.TypeTextarea, "description", "Mô tả sự cố", true, nil, schema.WidthFull),
		seedField(fieldtype.TypeToggle, "follow_up_required", "Cần theo dõi tiếp", false, nil, schema.WidthHalf),
	}

	return []formmodels.FormTemplate{
		{
			Name:             "Nhật ký làm mặt băng",
			FormType:         "resurface",
			Description:      "Theo dõi các lượt làm mặt băng trong ngày",
			Fields:           resurfaceFields,
			Version:          1,
			IsSystemTemplate: true,
		},
		{
			Name:             "Nhật ký thay lưỡi dao",
			FormType:         "blade_change",
			Description:      "Theo dõi lịch sử thay lưỡi dao máy làm băng",
			Fields:           bladeChangeFields,
			Version:          1,
			IsSystemTemplate: true,
		},
		{
			Name:             "Báo cáo sự cố",
			FormType:         "incident_report",
			Description:      "Ghi nhận sự cố tại sân băng",
			Fields:           incidentFields,
			Version:          1,
			IsSystemTemplate: true,
		},
	}
}

// InitSystemTemplates seed các template hệ thống nếu chưa tồn tại.
// Template hệ thống là global (FacilityID = nil), không thể xóa qua API.
func (s *InitService) InitSystemTemplates() error {
	log := logger.GetAppLogger()
	ctx := basesvc.WithSystemTemplateInsertAllowed(context.Background())

	for _, seed := range systemTemplateSeeds() {
		filter := bson.M{
			"formType":         seed.FormType,
			"isSystemTemplate": true,
		}
		var findOpts *options.FindOneOptions
		existing, err := s.templateService.FindOne(ctx, filter, findOpts)
		if err == nil {
			log.Infof("System template %s (%s) đã tồn tại, bỏ qua", existing.Name, seed.FormType)
			continue
		}
		if !errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("check system template %s: %w", seed.FormType, err)
		}

		schema.Renumber(seed.Fields)
		now := time.Now().UnixMilli()
		seed.CreatedAt = now
		seed.UpdatedAt = now

		created, err := s.templateService.InsertOne(ctx, seed)
		if err != nil {
			return fmt.Errorf("insert system template %s: %w", seed.FormType, err)
		}
		log.Infof("System template %s (%s) seeded thành công (ID: %s)", created.Name, created.FormType, created.ID.Hex())
	}

	return nil
}
