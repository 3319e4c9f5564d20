// Package models - FieldRow, FormTemplate, TemplateVersion thuộc domain form.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
)

// FieldRow là một field trong cấu hình đang hoạt động của (facility, formType),
// lưu một document per field. Xóa mềm qua isActive; load bỏ qua row isActive=false.
// Collection: form_fields
type FieldRow struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FacilityID primitive.ObjectID `json:"facilityId" bson:"facilityId" index:"single:1;compound:facility_formtype"`
	FormType   string             `json:"formType" bson:"formType" index:"compound:facility_formtype"` // Loại form: "resurface", "blade_change", "incident_report", ...

	FieldID      string         `json:"fieldId" bson:"fieldId"` // ID ổn định của field (uuid), sinh phía editor
	Name         string         `json:"name" bson:"name"`       // Machine key trong record submit
	Label        string         `json:"label" bson:"label"`
	Type         fieldtype.Type `json:"type" bson:"type"`
	Options      []string       `json:"options" bson:"options"`
	IsRequired   bool           `json:"isRequired" bson:"isRequired"`
	Placeholder  string         `json:"placeholder,omitempty" bson:"placeholder,omitempty"`
	HelpText     string         `json:"helpText,omitempty" bson:"helpText,omitempty"`
	DefaultValue string         `json:"defaultValue,omitempty" bson:"defaultValue,omitempty"`
	Width        schema.Width   `json:"width" bson:"width" default:"full"`
	Order        int            `json:"order" bson:"order"` // Gợi ý thứ tự; load luôn sort lại và đánh số lại

	IsActive   bool  `json:"isActive" bson:"isActive" default:"true" index:"single:1"` // false: row bị xóa mềm
	ReplacedAt int64 `json:"-" bson:"replacedAt,omitempty"`                            // Marker của batch replace-all, dùng để khôi phục khi insert thất bại

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// ToFieldDefinition chuyển FieldRow về FieldDefinition dùng trong engine.
func (r FieldRow) ToFieldDefinition() schema.FieldDefinition {
	options := r.Options
	if options == nil {
		options = []string{}
	}
	return schema.FieldDefinition{
		ID:           r.FieldID,
		Name:         r.Name,
		Label:        r.Label,
		Type:         r.Type,
		Options:      options,
		IsRequired:   r.IsRequired,
		Placeholder:  r.Placeholder,
		HelpText:     r.HelpText,
		DefaultValue: r.DefaultValue,
		Width:        r.Width,
		Order:        r.Order,
	}
}

// NewFieldRow tạo FieldRow từ FieldDefinition cho một (facility, formType).
func NewFieldRow(facilityID primitive.ObjectID, formType string, f schema.FieldDefinition) FieldRow {
	return FieldRow{
		FacilityID:   facilityID,
		FormType:     formType,
		FieldID:      f.ID,
		Name:         f.Name,
		Label:        f.Label,
		Type:         f.Type,
		Options:      f.Options,
		IsRequired:   f.IsRequired,
		Placeholder:  f.Placeholder,
		HelpText:     f.HelpText,
		DefaultValue: f.DefaultValue,
		Width:        f.Width,
		Order:        f.Order,
		IsActive:     true,
	}
}
