package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
)

// FormTemplate là một template trong thư viện: field collection có tên,
// có version, có thể nhân bản hoặc áp dụng cho một (facility, formType).
// Toàn bộ fields nằm trong một document để "replace all" là một write nguyên tử.
// Collection: form_templates
type FormTemplate struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	FacilityID  *primitive.ObjectID `json:"facilityId,omitempty" bson:"facilityId,omitempty" index:"single:1"` // nil: template dùng chung cho mọi facility
	Name        string              `json:"name" bson:"name" index:"single:1"`
	FormType    string              `json:"formType" bson:"formType" index:"single:1"`
	Description string              `json:"description,omitempty" bson:"description,omitempty"`

	Fields  []schema.FieldDefinition `json:"fields" bson:"fields"`
	Version int                      `json:"version" bson:"version" default:"1"` // Tăng 1 sau mỗi lần save

	IsSystemTemplate bool `json:"isSystemTemplate" bson:"isSystemTemplate"` // true: cấm xóa (vẫn cho sửa và nhân bản)

	CreatedBy *primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt int64               `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64               `json:"updatedAt" bson:"updatedAt"`

	// Quan hệ cần kiểm tra trước khi xóa template
	_Relationships struct{} `relationship:"collection:form_template_versions,field:templateId,message:Không thể xóa template vì còn %d snapshot phiên bản,cascade:true,optional:true"`
}

// TemplateVersion là snapshot bất biến của một FormTemplate tại thời điểm save.
// Mỗi lần save thành công append đúng một document; không bao giờ sửa hoặc xóa
// khi template gốc còn tồn tại.
// Collection: form_template_versions
type TemplateVersion struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TemplateID primitive.ObjectID `json:"templateId" bson:"templateId" index:"single:1;compound:template_version_unique"`
	Version    int                `json:"version" bson:"version" index:"compound:template_version_unique"` // Trùng version của template tại thời điểm capture

	Fields    []schema.FieldDefinition `json:"fields" bson:"fields"`
	ChangedBy *primitive.ObjectID      `json:"changedBy,omitempty" bson:"changedBy,omitempty"`
	Changelog string                   `json:"changelog,omitempty" bson:"changelog,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
}
