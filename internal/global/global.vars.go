package global

import (
	"github.com/KellyJ386/rink-zenith-reports-sub000/config"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Facilities           string // Tên collection cho cơ sở sân băng
	FormFields           string // Tên collection cho cấu hình field đang hoạt động theo (facility, formType)
	FormTemplates        string // Tên collection cho template form trong thư viện
	FormTemplateVersions string // Tên collection cho snapshot phiên bản của template
	LogEntries           string // Tên collection cho bản ghi nhật ký bảo trì
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{ // Tên các collection
	Facilities:           "facilities",
	FormFields:           "form_fields",
	FormTemplates:        "form_templates",
	FormTemplateVersions: "form_template_versions",
	LogEntries:           "log_entries",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
