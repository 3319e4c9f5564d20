package main

import (
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/initsvc"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/logger"
)

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	// Seed các template hệ thống cho thư viện form (resurface, blade_change, incident_report)
	log.Info("🔄 [INIT] Initializing system form templates...")
	if err := initService.InitSystemTemplates(); err != nil {
		log.Fatalf("Failed to initialize system form templates: %v", err)
	}
	log.Info("✅ [INIT] System form templates initialized")

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
