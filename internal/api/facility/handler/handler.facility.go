// Package facilityhdl - handler cho domain facility.
package facilityhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/base/handler"
	facilitydto "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/facility/dto"
	facilitymodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/facility/models"
	facilitysvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/facility/service"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/utility"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FacilityHandler xử lý các route CRUD cho facility
type FacilityHandler struct {
	*basehdl.BaseHandler[facilitymodels.Facility, facilitydto.FacilityCreateInput, facilitydto.FacilityUpdateInput]
	FacilityService *facilitysvc.FacilityService
}

// NewFacilityHandler tạo mới FacilityHandler
func NewFacilityHandler() (*FacilityHandler, error) {
	facilityService, err := facilitysvc.NewFacilityService()
	if err != nil {
		return nil, fmt.Errorf("failed to create facility service: %w", err)
	}
	hdl := &FacilityHandler{FacilityService: facilityService}
	hdl.BaseHandler = basehdl.NewBaseHandler[facilitymodels.Facility, facilitydto.FacilityCreateInput, facilitydto.FacilityUpdateInput](facilityService.BaseServiceMongoImpl)
	return hdl, nil
}

// DeleteById xóa facility theo ID, kiểm tra dữ liệu trực thuộc trước khi xóa.
// Override base handler để đi qua FacilityService.DeleteById.
func (h *FacilityHandler) DeleteById(c fiber.Ctx) error {
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

		err := h.FacilityService.DeleteById(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, nil, err)
		return nil
	})
}
