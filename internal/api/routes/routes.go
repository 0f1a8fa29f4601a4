package routes

import (
	"log"

	"pipetrak-backend/internal/api/handlers"
	"pipetrak-backend/internal/api/middleware"
	"pipetrak-backend/internal/auth"
	"pipetrak-backend/internal/config"
	"pipetrak-backend/internal/repository"
	"pipetrak-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize repositories
	repos := repository.NewRepositories(db)
	uow := repository.NewGormUnitOfWork(db)

	// Initialize services
	templateService := service.NewTemplateService(repos.Templates)
	projectService := service.NewProjectService(repos.Projects, templateService, validator)
	componentService := service.NewComponentService(repos.Components, repos.Instances, repos.Drawings, repos.Audit, templateService, validator)
	importService := service.NewImportService(repos, uow, validator)
	activityService := service.NewActivityService(repos.Audit, repos.Instances)

	// Initialize auth; mutating endpoints run with OptionalAuth so audit
	// attribution degrades to "anonymous" rather than blocking writes in
	// development setups without a token issuer.
	var authMiddleware *auth.Middleware
	authService, err := auth.NewService(cfg.JWTSecret, "pipetrak")
	if err != nil {
		log.Printf("Warning: auth disabled: %v", err)
	} else {
		authMiddleware = auth.NewMiddleware(authService)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService)
	componentHandler := handlers.NewComponentHandler(componentService)
	templateHandler := handlers.NewTemplateHandler(repos.Templates)
	drawingHandler := handlers.NewDrawingHandler(repos.Drawings)
	importHandler := handlers.NewImportHandler(importService)
	activityHandler := handlers.NewActivityHandler(activityService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.OptionalAuth())
	}

	{
		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/components", componentHandler.GetComponentsByProject)
			projects.GET("/:id/drawings", drawingHandler.GetProjectDrawings)
			projects.GET("/:id/templates", templateHandler.GetProjectTemplates)
			projects.POST("/:id/imports", importHandler.RunImport)
			projects.GET("/:id/imports", importHandler.ListImportJobs)
			projects.GET("/:id/activity", activityHandler.GetProjectActivity)
			projects.GET("/:id/welds/recent", activityHandler.GetRecentWelds)
		}

		// Component routes
		components := v1.Group("/components")
		{
			components.POST("", componentHandler.CreateComponent)
			components.GET("/:id", componentHandler.GetComponent)
			components.PATCH("/:id", componentHandler.UpdateComponent)
			components.DELETE("/:id", componentHandler.DeleteComponent)
			components.PATCH("/:id/milestones/:name", componentHandler.UpdateMilestone)
		}

		// Drawing routes
		drawings := v1.Group("/drawings")
		{
			drawings.GET("/:id/components", componentHandler.GetComponentsByDrawing)
		}

		// Template routes
		templates := v1.Group("/templates")
		{
			templates.GET("/by-type/:type", templateHandler.GetTemplateForType)
		}

		// Import job routes
		imports := v1.Group("/imports")
		{
			imports.GET("/:id", importHandler.GetImportJob)
		}

		// Tooling routes
		tools := v1.Group("/tools")
		{
			tools.POST("/drawings/normalize", drawingHandler.NormalizeDrawings)
		}
	}

	return router
}
