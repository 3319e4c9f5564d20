package formhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	formdto "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/dto"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
)

// requireFieldContext lấy facility từ context và formType, fieldId từ URL params.
// Dùng chung cho các route thao tác trên một field cụ thể của cấu hình.
func (h *FormConfigHandler) requireFieldContext(c fiber.Ctx) (primitive.ObjectID, string, string, error) {
	facilityID := h.GetActiveFacilityID(c)
	if facilityID == nil {
		return primitive.NilObjectID, "", "", common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu header X-Facility-ID",
			common.StatusBadRequest,
			nil,
		)
	}
	formType, err := h.requireFormType(c)
	if err != nil {
		return primitive.NilObjectID, "", "", err
	}
	fieldID := c.Params("fieldId")
	if fieldID == "" {
		return primitive.NilObjectID, "", "", common.NewError(
			common.ErrCodeValidationFormat,
			"fieldId không được để trống trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}
	return *facilityID, formType, fieldID, nil
}

// HandleInsertField thêm field mới từ palette vào cuối cấu hình và commit.
func (h *FormConfigHandler) HandleInsertField(c fiber.Ctx) error {
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

		var input formdto.FieldInsertInput
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

		inserted, _, err := h.ConfigService.InsertField(c.Context(), *facilityID, formType, fieldtype.Type(input.Type), input.Label)
		h.HandleResponse(c, inserted, err)
		return nil
	})
}

// HandleReorderField di chuyển field đến vị trí mới (array move) và commit thứ tự.
func (h *FormConfigHandler) HandleReorderField(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		facilityID, formType, fieldID, err := h.requireFieldContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input formdto.FieldReorderInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		fields, err := h.ConfigService.ReorderField(c.Context(), facilityID, formType, fieldID, input.TargetIndex)
		h.HandleResponse(c, fields, err)
		return nil
	})
}

// HandleDeleteField xóa field khỏi cấu hình và commit.
func (h *FormConfigHandler) HandleDeleteField(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		facilityID, formType, fieldID, err := h.requireFieldContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		fields, err := h.ConfigService.DeleteField(c.Context(), facilityID, formType, fieldID)
		h.HandleResponse(c, fields, err)
		return nil
	})
}

// HandlePatchField sửa thuộc tính của field qua properties panel và commit.
func (h *FormConfigHandler) HandlePatchField(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		facilityID, formType, fieldID, err := h.requireFieldContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input formdto.FieldPatchInput
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

		updated, _, err := h.ConfigService.PatchField(c.Context(), facilityID, formType, fieldID, formdto.ToFieldPatch(input))
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleDuplicateField nhân bản field và commit.
func (h *FormConfigHandler) HandleDuplicateField(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		facilityID, formType, fieldID, err := h.requireFieldContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		clone, _, err := h.ConfigService.DuplicateField(c.Context(), facilityID, formType, fieldID)
		h.HandleResponse(c, clone, err)
		return nil
	})
}
