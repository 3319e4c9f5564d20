package formhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/base/handler"
	formdto "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/dto"
	formmodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/models"
	formsvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/service"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/portable"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/logger"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/utility"
)

// FormTemplateHandler xử lý các route CRUD và nghiệp vụ cho thư viện template
type FormTemplateHandler struct {
	*basehdl.BaseHandler[formmodels.FormTemplate, formdto.TemplateCreateInput, formdto.TemplateUpdateInput]
	TemplateService *formsvc.FormTemplateService
	ConfigService   *formsvc.FormConfigService
}

// NewFormTemplateHandler tạo mới FormTemplateHandler
func NewFormTemplateHandler() (*FormTemplateHandler, error) {
	templateService, err := formsvc.NewFormTemplateService()
	if err != nil {
		return nil, fmt.Errorf("failed to create form template service: %w", err)
	}
	configService, err := formsvc.NewFormConfigService()
	if err != nil {
		return nil, fmt.Errorf("failed to create form config service: %w", err)
	}
	hdl := &FormTemplateHandler{
		TemplateService: templateService,
		ConfigService:   configService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[formmodels.FormTemplate, formdto.TemplateCreateInput, formdto.TemplateUpdateInput](templateService.BaseServiceMongoImpl)
	return hdl, nil
}

// parseTemplateID lấy và validate template ID từ URL params.
func (h *FormTemplateHandler) parseTemplateID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// currentUserID lấy user ID từ context (set bởi AuthMiddleware), nil nếu không có.
func currentUserID(c fiber.Ctx) *primitive.ObjectID {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return nil
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return nil
	}
	return &userID
}

// HandleSave commit field collection mới cho template: tăng version và capture
// một snapshot. Save thất bại không ảnh hưởng dữ liệu đã commit trước đó.
func (h *FormTemplateHandler) HandleSave(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		templateID, err := h.parseTemplateID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input formdto.TemplateSaveInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		fields, err := formdto.ToFieldDefinitions(input.Fields)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.TemplateService.Save(c.Context(), templateID, fields, currentUserID(c), input.Changelog)
		if err == nil {
			logger.LogTemplateChange("save", templateID.Hex(), c, map[string]interface{}{
				"version":     updated.Version,
				"field_count": len(fields),
			})
		}
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleDuplicate nhân bản template với tên mới.
func (h *FormTemplateHandler) HandleDuplicate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		templateID, err := h.parseTemplateID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input formdto.TemplateDuplicateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		copyTemplate, err := h.TemplateService.Duplicate(c.Context(), templateID, input.Name, currentUserID(c))
		if err == nil {
			logger.LogTemplateChange("duplicate", templateID.Hex(), c, map[string]interface{}{
				"new_template_id": copyTemplate.ID.Hex(),
				"new_name":        input.Name,
			})
		}
		h.HandleResponse(c, copyTemplate, err)
		return nil
	})
}

// DeleteById xóa template theo ID. Template hệ thống không thể xóa.
// Override base handler để dọn luôn snapshot version.
func (h *FormTemplateHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		templateID, err := h.parseTemplateID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.TemplateService.DeleteById(c.Context(), templateID)
		if err == nil {
			logger.LogTemplateChange("delete", templateID.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleExport export fields của template thành tài liệu di động.
func (h *FormTemplateHandler) HandleExport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		templateID, err := h.parseTemplateID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		template, err := h.TemplateService.FindOneById(c.Context(), templateID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		doc := portable.Export(template.FormType, template.Name, template.Fields)
		h.HandleResponse(c, doc, nil)
		return nil
	})
}

// HandleImport parse tài liệu di động và trả về field collection mới kèm metadata.
// Không tự commit: client save qua HandleSave khi muốn giữ kết quả import.
func (h *FormTemplateHandler) HandleImport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		body := c.Body()
		if len(body) == 0 {
			h.HandleResponse(c, nil, common.ErrFormInvalidFormat)
			return nil
		}

		fields, err := portable.Import(body)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fields, nil)
		return nil
	})
}

// HandleApply áp dụng fields của template vào cấu hình đang hoạt động của
// facility hiện tại (X-Facility-ID) với formType của template.
func (h *FormTemplateHandler) HandleApply(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		templateID, err := h.parseTemplateID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		facilityID := h.GetActiveFacilityID(c)
		if facilityID == nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu header X-Facility-ID",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		template, err := h.TemplateService.ApplyToConfig(c.Context(), h.ConfigService, templateID, *facilityID)
		if err == nil {
			logger.LogTemplateChange("apply", templateID.Hex(), c, map[string]interface{}{
				"form_type": template.FormType,
			})
		}
		h.HandleResponse(c, template, err)
		return nil
	})
}
