// Package formhdl - handler cho domain form.
package formhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/base/handler"
	formdto "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/dto"
	formmodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/models"
	formsvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/service"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/portable"
)

// FormConfigHandler xử lý các route cho cấu hình form đang hoạt động theo
// (facility, formType). Facility lấy từ context (header X-Facility-ID),
// formType từ URL params.
type FormConfigHandler struct {
	*basehdl.BaseHandler[formmodels.FieldRow, formdto.FieldInput, formdto.FieldInput]
	ConfigService *formsvc.FormConfigService
}

// NewFormConfigHandler tạo mới FormConfigHandler
func NewFormConfigHandler() (*FormConfigHandler, error) {
	configService, err := formsvc.NewFormConfigService()
	if err != nil {
		return nil, fmt.Errorf("failed to create form config service: %w", err)
	}
	hdl := &FormConfigHandler{ConfigService: configService}
	hdl.BaseHandler = basehdl.NewBaseHandler[formmodels.FieldRow, formdto.FieldInput, formdto.FieldInput](configService.BaseServiceMongoImpl)
	return hdl, nil
}

// requireFormType lấy formType từ URL params, lỗi nếu thiếu.
func (h *FormConfigHandler) requireFormType(c fiber.Ctx) (string, error) {
	formType := c.Params("formType")
	if formType == "" {
		return "", common.NewError(
			common.ErrCodeValidationFormat,
			"formType không được để trống trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}
	return formType, nil
}

// HandleLoad trả về cấu hình đang hoạt động của (facility, formType).
// Chưa có cấu hình trả về mảng rỗng, không phải lỗi.
func (h *FormConfigHandler) HandleLoad(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
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

		formType, err := h.requireFormType(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		fields, err := h.ConfigService.Load(c.Context(), *facilityID, formType)
		h.HandleResponse(c, fields, err)
		return nil
	})
}

// HandleReplaceAll commit field set mới cho (facility, formType), thay thế toàn bộ
// cấu hình hiện có.
func (h *FormConfigHandler) HandleReplaceAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
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

		formType, err := h.requireFormType(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input formdto.SaveConfigInput
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

		if err := h.ConfigService.ReplaceAll(c.Context(), *facilityID, formType, fields); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fields, nil)
		return nil
	})
}

// HandleExport export cấu hình đang hoạt động thành tài liệu di động.
func (h *FormConfigHandler) HandleExport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
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

		formType, err := h.requireFormType(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		fields, err := h.ConfigService.Load(c.Context(), *facilityID, formType)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		doc := portable.Export(formType, formType, fields)
		h.HandleResponse(c, doc, nil)
		return nil
	})
}

// HandleImport parse tài liệu di động và trả về field collection mới.
// Import chỉ thay working collection phía client; cấu hình đã commit không đổi
// cho tới khi client save qua HandleReplaceAll.
func (h *FormConfigHandler) HandleImport(c fiber.Ctx) error {
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
