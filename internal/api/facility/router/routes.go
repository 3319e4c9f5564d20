// Package router đăng ký các route thuộc domain Facility.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	facilityhdl "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/facility/handler"
	apirouter "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/router"
)

// Register đăng ký tất cả route facility lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	facilityHandler, err := facilityhdl.NewFacilityHandler()
	if err != nil {
		return fmt.Errorf("create facility handler: %w", err)
	}
	// DeleteById được override trong FacilityHandler để kiểm tra dữ liệu trực thuộc
	r.RegisterCRUDRoutes(v1, "/facilities", facilityHandler, apirouter.ReadWriteConfig)

	return nil
}
