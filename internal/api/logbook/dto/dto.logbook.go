// Package logbookdto - input cho domain logbook.
package logbookdto

// LogEntrySubmitInput là payload submit một bản ghi nhật ký.
// Values là map giá trị thô theo tên field, service sẽ ép kiểu và
// kiểm tra field bắt buộc theo cấu hình form đang hoạt động.
type LogEntrySubmitInput struct {
	FormType string                 `json:"formType" validate:"required,no_xss"`
	Values   map[string]interface{} `json:"values" validate:"required"`
}

// LogEntryCreateInput dùng cho route insert chuẩn (import lại dữ liệu cũ).
type LogEntryCreateInput struct {
	FormType    string                 `json:"formType" validate:"required,no_xss"`
	Data        map[string]interface{} `json:"data" validate:"required"`
	SubmittedAt int64                  `json:"submittedAt" validate:"omitempty,gte=0"`

	// Transform tự động sang ObjectID khi parse body
	FacilityID string `json:"facilityId,omitempty" transform:"str_objectid,optional"`
}

// LogEntryUpdateInput - bản ghi nhật ký là append-only, không cho sửa nội dung.
type LogEntryUpdateInput struct{}
