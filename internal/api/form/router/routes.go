// Package router đăng ký các route thuộc domain Form: cấu hình đang hoạt động,
// thư viện template và lịch sử phiên bản.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	formhdl "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/handler"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/middleware"
	apirouter "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/router"
)

// Register đăng ký tất cả route form lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	authMiddleware := middleware.AuthMiddleware()
	facilityContextMiddleware := middleware.FacilityContextMiddleware()
	chain := []fiber.Handler{authMiddleware, facilityContextMiddleware}

	// Cấu hình đang hoạt động theo (facility, formType)
	formConfigHandler, err := formhdl.NewFormConfigHandler()
	if err != nil {
		return fmt.Errorf("create form config handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/form-config", "GET", "/:formType", chain, formConfigHandler.HandleLoad)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-config", "PUT", "/:formType", chain, formConfigHandler.HandleReplaceAll)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-config", "GET", "/:formType/export", chain, formConfigHandler.HandleExport)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-config", "POST", "/import", chain, formConfigHandler.HandleImport)

	// Thao tác field-level trên cấu hình (editor engine phía server)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-config", "POST", "/:formType/fields", chain, formConfigHandler.HandleInsertField)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-config", "PATCH", "/:formType/fields/:fieldId", chain, formConfigHandler.HandlePatchField)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-config", "DELETE", "/:formType/fields/:fieldId", chain, formConfigHandler.HandleDeleteField)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-config", "POST", "/:formType/fields/:fieldId/reorder", chain, formConfigHandler.HandleReorderField)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-config", "POST", "/:formType/fields/:fieldId/duplicate", chain, formConfigHandler.HandleDuplicateField)

	// Thư viện template
	formTemplateHandler, err := formhdl.NewFormTemplateHandler()
	if err != nil {
		return fmt.Errorf("create form template handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/form-templates", formTemplateHandler, apirouter.ReadWriteConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-templates", "POST", "/:id/save", chain, formTemplateHandler.HandleSave)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-templates", "POST", "/:id/duplicate", chain, formTemplateHandler.HandleDuplicate)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-templates", "GET", "/:id/export", chain, formTemplateHandler.HandleExport)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-templates", "POST", "/import", chain, formTemplateHandler.HandleImport)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-templates", "POST", "/:id/apply", chain, formTemplateHandler.HandleApply)

	// Lịch sử phiên bản (append-only, chỉ đọc qua API)
	templateVersionHandler, err := formhdl.NewTemplateVersionHandler()
	if err != nil {
		return fmt.Errorf("create template version handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/form-template-versions", templateVersionHandler, apirouter.ReadOnlyConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-templates", "GET", "/:id/versions", chain, templateVersionHandler.HandleListVersions)
	apirouter.RegisterRouteWithMiddleware(v1, "/form-templates", "GET", "/:id/versions/:version/restore", chain, templateVersionHandler.HandleRestore)

	return nil
}
