package basesvc

import (
	"context"
	"errors"
	"testing"

	formmodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/models"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
)

// Template hệ thống phải bị chặn ở mọi đường xóa, template thường và model
// không có field IsSystemTemplate thì đi qua bình thường.
func TestValidateSystemTemplateDelete(t *testing.T) {
	ctx := context.Background()

	systemTemplate := formmodels.FormTemplate{Name: "Resurface mặc định", IsSystemTemplate: true}
	err := validateSystemTemplateDelete(ctx, systemTemplate)
	if err == nil {
		t.Fatal("Muốn lỗi khi xóa template hệ thống, nhận nil")
	}
	if !errors.Is(err, common.ErrFormSystemTemplate) {
		t.Errorf("Muốn common.ErrFormSystemTemplate, nhận %v", err)
	}

	// Con trỏ tới template hệ thống cũng phải bị chặn
	if err := validateSystemTemplateDelete(ctx, &systemTemplate); !errors.Is(err, common.ErrFormSystemTemplate) {
		t.Errorf("Muốn common.ErrFormSystemTemplate với con trỏ, nhận %v", err)
	}

	userTemplate := formmodels.FormTemplate{Name: "Template của user", IsSystemTemplate: false}
	if err := validateSystemTemplateDelete(ctx, userTemplate); err != nil {
		t.Errorf("Không muốn lỗi khi xóa template thường, nhận %v", err)
	}

	// Model không có field IsSystemTemplate không bị guard can thiệp
	row := formmodels.FieldRow{Name: "operator_name"}
	if err := validateSystemTemplateDelete(ctx, row); err != nil {
		t.Errorf("Không muốn lỗi với model không có IsSystemTemplate, nhận %v", err)
	}
}

// Chỉ context seed của hệ thống mới được set isSystemTemplate = true qua update.
func TestValidateSystemTemplateUpdate(t *testing.T) {
	update := &UpdateData{Set: map[string]interface{}{"isSystemTemplate": true}}

	if err := validateSystemTemplateUpdate(context.Background(), update); err == nil {
		t.Error("Muốn lỗi khi user set isSystemTemplate = true, nhận nil")
	}

	allowed := WithSystemTemplateInsertAllowed(context.Background())
	if err := validateSystemTemplateUpdate(allowed, update); err != nil {
		t.Errorf("Không muốn lỗi trong context seed hệ thống, nhận %v", err)
	}

	normal := &UpdateData{Set: map[string]interface{}{"name": "Tên mới"}}
	if err := validateSystemTemplateUpdate(context.Background(), normal); err != nil {
		t.Errorf("Không muốn lỗi với update không đụng isSystemTemplate, nhận %v", err)
	}
}
