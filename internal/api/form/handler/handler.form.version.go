package formhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/base/handler"
	formdto "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/dto"
	formmodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/models"
	formsvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/form/service"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/utility"
)

// TemplateVersionHandler xử lý các route cho lịch sử phiên bản template
type TemplateVersionHandler struct {
	*basehdl.BaseHandler[formmodels.TemplateVersion, formdto.TemplateVersionCreateInput, formdto.TemplateVersionUpdateInput]
	VersionService *formsvc.TemplateVersionService
}

// NewTemplateVersionHandler tạo mới TemplateVersionHandler
func NewTemplateVersionHandler() (*TemplateVersionHandler, error) {
	versionService, err := formsvc.NewTemplateVersionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create template version service: %w", err)
	}
	hdl := &TemplateVersionHandler{VersionService: versionService}
	hdl.BaseHandler = basehdl.NewBaseHandler[formmodels.TemplateVersion, formdto.TemplateVersionCreateInput, formdto.TemplateVersionUpdateInput](versionService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleListVersions trả về toàn bộ snapshot của một template, mới nhất trước.
func (h *TemplateVersionHandler) HandleListVersions(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		versions, err := h.VersionService.ListVersions(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, versions, err)
		return nil
	})
}

// HandleRestore trả về field collection của một snapshot cụ thể.
// Caller dùng kết quả làm working collection và save lại để version cũ trở
// thành version hiện hành.
func (h *TemplateVersionHandler) HandleRestore(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		version, err := strconv.Atoi(c.Params("version"))
		if err != nil || version < 1 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"version phải là số nguyên dương",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		fields, err := h.VersionService.Restore(c.Context(), utility.String2ObjectID(id), version)
		h.HandleResponse(c, fields, err)
		return nil
	})
}
