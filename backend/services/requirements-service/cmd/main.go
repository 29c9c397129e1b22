package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/app"
	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/config"
	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/controllers"
	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/routes"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (DB, repositories, services)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize app")
	}
	defer application.Close()

	// 3) Controllers
	healthCtrl := controllers.NewHealthController(application)
	matchingCtrl := controllers.NewMatchingController(application.MatchingService)
	ingestionCtrl := controllers.NewIngestionController(application.IngestionService)
	operatorCtrl := controllers.NewOperatorController(application.OperatorService)
	requirementCtrl := controllers.NewRequirementController(application.RequirementService)

	// 4) Router
	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.MatchingRun, matchingCtrl.RunMatchHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.OperatorCSVRequirements, ingestionCtrl.UploadRequirementsCSVHandler).Methods(http.MethodPost)

	router.HandleFunc(routes.Operators, operatorCtrl.ListOperatorsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Operators, operatorCtrl.CreateOperatorHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.OperatorByID, operatorCtrl.UpdateOperatorHandler).Methods(http.MethodPatch)

	router.HandleFunc(routes.Requirements, requirementCtrl.ListRecentHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Requirements, requirementCtrl.CreateRequirementHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.RequirementByID, requirementCtrl.DeleteRequirementHandler).Methods(http.MethodDelete)

	// 5) CORS
	allowedOrigins := []string{cfg.AppUrl}
	if !cfg.LDFlag_CORSHighSecurity {
		allowedOrigins = append(allowedOrigins, utils.CORSLowSecurityAllowedOriginLocalhost)
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
