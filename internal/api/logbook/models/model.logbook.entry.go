// Package logbookmodels - model cho domain logbook (nhật ký bảo trì).
package logbookmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogEntry là một bản ghi nhật ký đã submit. Data chứa giá trị của các field
// theo cấu hình form đang hoạt động tại thời điểm submit (key = tên field).
type LogEntry struct {
	ID          primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	FacilityID  primitive.ObjectID     `json:"facilityId" bson:"facilityId" index:"single:1;compound:facility_formtype_log"`
	FormType    string                 `json:"formType" bson:"formType" index:"compound:facility_formtype_log"`
	Data        map[string]interface{} `json:"data" bson:"data"`
	SubmittedBy *primitive.ObjectID    `json:"submittedBy,omitempty" bson:"submittedBy,omitempty"`
	SubmittedAt int64                  `json:"submittedAt" bson:"submittedAt" index:"single:-1"`
	CreatedAt   int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                  `json:"updatedAt" bson:"updatedAt"`
}
