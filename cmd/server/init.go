package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/KellyJ386/rink-zenith-reports-sub000/config"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/events"
	facilitymodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/facility/models"
	formmodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/models"
	logbookmodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/logbook/models"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/database"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/global"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/logger"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/utility"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initDataChangeAudit()  // Đăng ký audit log cho các thay đổi dữ liệu
}

// Hàm đăng ký handler audit cho sự kiện thay đổi dữ liệu từ layer CRUD
func initDataChangeAudit() {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		// Audit không được phép làm hỏng request chính nếu handler panic
		utility.GoProtect(func() {
			fields := logrus.Fields{
				"collection": e.CollectionName,
				"operation":  e.Operation,
			}
			if facilityID := events.GetFacilityIDFromDocument(e.Document); !facilityID.IsZero() {
				fields["facility_id"] = facilityID.Hex()
			}
			if updatedAt := events.GetInt64Field(e.Document, "UpdatedAt"); updatedAt > 0 {
				fields["updated_at"] = updatedAt
			}
			logger.GetAuditLogger().WithFields(fields).Info("Data changed")
		})
	})
	logrus.Info("Registered data change audit handler")
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, field_name, field_type, field_width, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Facilities), facilitymodels.Facility{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.FormFields), formmodels.FieldRow{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.FormTemplates), formmodels.FormTemplate{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.FormTemplateVersions), formmodels.TemplateVersion{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.LogEntries), logbookmodels.LogEntry{})
}
