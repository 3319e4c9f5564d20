// Package logbookhdl - handler cho domain logbook.
package logbookhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/base/handler"
	logbookdto "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/logbook/dto"
	logbookmodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/logbook/models"
	logbooksvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/logbook/service"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/logger"
)

// LogEntryHandler xử lý các route cho bản ghi nhật ký
type LogEntryHandler struct {
	*basehdl.BaseHandler[logbookmodels.LogEntry, logbookdto.LogEntryCreateInput, logbookdto.LogEntryUpdateInput]
	LogEntryService *logbooksvc.LogEntryService
}

// NewLogEntryHandler tạo mới LogEntryHandler
func NewLogEntryHandler() (*LogEntryHandler, error) {
	logEntryService, err := logbooksvc.NewLogEntryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create log entry service: %w", err)
	}
	hdl := &LogEntryHandler{
		LogEntryService: logEntryService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[logbookmodels.LogEntry, logbookdto.LogEntryCreateInput, logbookdto.LogEntryUpdateInput](logEntryService.BaseServiceMongoImpl)
	return hdl, nil
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

// HandleSubmit nhận giá trị thô của một form, validate theo cấu hình đang
// hoạt động của facility và lưu bản ghi nhật ký. Nếu thiếu field bắt buộc,
// trả về danh sách lỗi theo từng field và không lưu gì cả.
func (h *LogEntryHandler) HandleSubmit(c fiber.Ctx) error {
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

		var input logbookdto.LogEntrySubmitInput
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

		entry, fieldErrs, err := h.LogEntryService.Submit(c.Context(), *facilityID, input.FormType, input.Values, currentUserID(c))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if len(fieldErrs) > 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeFormSubmission,
				"Thiếu dữ liệu của field bắt buộc",
				common.StatusBadRequest,
				fieldErrs,
			))
			return nil
		}
		logger.LogCRUD("create", "log_entry", entry.ID.Hex(), c, map[string]interface{}{
			"form_type": input.FormType,
		})
		h.HandleResponse(c, entry, nil)
		return nil
	})
}

// HandleListByFormType trả về bản ghi nhật ký của facility theo loại form,
// mới nhất trước. Query param "limit" giới hạn số bản ghi (mặc định 50).
func (h *LogEntryHandler) HandleListByFormType(c fiber.Ctx) error {
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

		formType := c.Params("formType")
		if formType == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu formType trong URL",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		limit := int64(50)
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed < 1 {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Giá trị limit '%s' không hợp lệ", raw),
					common.StatusBadRequest,
					nil,
				))
				return nil
			}
			limit = parsed
		}

		entries, err := h.LogEntryService.ListByFormType(c.Context(), *facilityID, formType, limit)
		h.HandleResponse(c, entries, err)
		return nil
	})
}
