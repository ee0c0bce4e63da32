package v1

import (
	"net/http"

	"job-board-backend/config"
	_ "job-board-backend/docs" // registers swagger docs
	"job-board-backend/internal/delivery/http/middleware"
	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"job-board-backend/internal/usecase"
	"job-board-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	JobUC     domain.JobUsecase
	ExportUC  domain.ExportUsecase
	PreviewUC domain.PreviewUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	api.GET("/health", healthHandler(deps.HealthUC))
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewJobHandler(api, deps.JobUC, deps.ExportUC)
	NewPreviewHandler(api, deps.PreviewUC)

	return r
}

func healthHandler(uc usecase.HealthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uc == nil {
			response.Success(c, http.StatusOK, "System operational", nil)
			return
		}

		status, err := uc.Check(c.Request.Context())
		if err != nil {
			logger.Log.Error("Health check failed", "store", status["store"], "error", err)
			c.JSON(http.StatusServiceUnavailable, response.Response{
				Success: false,
				Message: "Store unavailable",
				Data:    status,
			})
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	}
}
