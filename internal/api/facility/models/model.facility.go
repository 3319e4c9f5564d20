// Package models - Facility thuộc domain facility.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Facility là một cơ sở sân băng. Mọi dữ liệu nghiệp vụ (cấu hình form,
// bản ghi nhật ký) đều được phân tách theo facility qua field facilityId.
// Collection: facilities
type Facility struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" index:"unique"` // Tên cơ sở, duy nhất
	Address  string             `json:"address,omitempty" bson:"address,omitempty"`
	City     string             `json:"city,omitempty" bson:"city,omitempty"`
	Timezone string             `json:"timezone,omitempty" bson:"timezone,omitempty" default:"America/New_York"`
	IsActive bool               `json:"isActive" bson:"isActive" default:"true" index:"single:1"` // false: cơ sở bị vô hiệu hóa

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`

	// Quan hệ cần kiểm tra trước khi xóa facility
	_Relationships struct{} `relationship:"collection:form_fields,field:facilityId,message:Không thể xóa facility vì còn %d cấu hình form,optional:true|collection:form_templates,field:facilityId,message:Không thể xóa facility vì còn %d template,optional:true|collection:log_entries,field:facilityId,message:Không thể xóa facility vì còn %d bản ghi nhật ký,optional:true"`
}
