// Package router đăng ký các route thuộc domain Logbook.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	logbookhdl "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/logbook/handler"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/middleware"
	apirouter "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/router"
)

// Register đăng ký tất cả route logbook lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	chain := []fiber.Handler{middleware.AuthMiddleware(), middleware.FacilityContextMiddleware()}

	logEntryHandler, err := logbookhdl.NewLogEntryHandler()
	if err != nil {
		return fmt.Errorf("create log entry handler: %w", err)
	}

	// Bản ghi nhật ký là append-only: chỉ insert và đọc, không update/delete.
	r.RegisterCRUDRoutes(v1, "/log-entries", logEntryHandler, apirouter.AppendOnlyConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/log-entries", "POST", "/submit", chain, logEntryHandler.HandleSubmit)
	apirouter.RegisterRouteWithMiddleware(v1, "/log-entries", "GET", "/by-form/:formType", chain, logEntryHandler.HandleListByFormType)

	return nil
}
