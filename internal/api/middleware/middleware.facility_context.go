package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/global"
)

// FacilityContextMiddleware middleware để quản lý facility context.
// - Đọc X-Facility-ID từ header
// - Validate facility tồn tại và chưa bị vô hiệu hóa
// - Lưu facility_id vào context để các handler filter dữ liệu theo cơ sở
//
// Route không gửi header sẽ đi tiếp không có facility context; handler nào
// bắt buộc context sẽ tự trả lỗi khi thiếu.
func FacilityContextMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		facilityIDStr := c.Get("X-Facility-ID")
		if facilityIDStr == "" {
			// Không có header, cho phép tiếp tục nhưng không set facility context
			return c.Next()
		}

		facilityID, err := primitive.ObjectIDFromHex(facilityIDStr)
		if err != nil {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeValidationFormat,
				"X-Facility-ID không đúng định dạng",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		// Validate facility tồn tại
		exists, err := facilityExists(context.Background(), facilityID)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}
		if !exists {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuth,
				"Facility không tồn tại hoặc đã bị vô hiệu hóa",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		c.Locals("facility_id", facilityID.Hex())
		return c.Next()
	}
}

// facilityExists kiểm tra facility có trong collection facilities và đang active không.
func facilityExists(ctx context.Context, facilityID primitive.ObjectID) (bool, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Facilities)
	if !exist {
		return false, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Collection facilities chưa được khởi tạo",
			common.StatusInternalServerError,
			nil,
		)
	}

	count, err := collection.CountDocuments(ctx, bson.M{
		"_id":      facilityID,
		"isActive": true,
	})
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}
