// server/internal/api/routes/routes.go
package routes

import (
	"sale-company-api-server/config"
	"sale-company-api-server/internal/api/handlers"
	"sale-company-api-server/internal/api/middleware"
	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/s3"
	"sale-company-api-server/internal/socket"
	"sale-company-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter nhận vào các thành phần phụ thuộc và thiết lập các route
func SetupRouter(
	cfg config.Config,
	logger *zap.Logger,
	stores *store.Stores,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	jwtSecret := []byte(cfg.JWT.Secret)

	// Khởi tạo các handlers
	companyHandler := &handlers.CompanyHandler{Store: stores.Companies, Logger: logger}
	brandHandler := &handlers.BrandHandler{Store: stores.Brands, Logger: logger}
	productHandler := &handlers.ProductHandler{Store: stores.Products, Logger: logger}
	jobHandler := &handlers.JobOpeningHandler{Store: stores.JobOpenings, Logger: logger}
	authHandler := &handlers.AuthHandler{Store: stores.Admins, JWTSecret: jwtSecret, Logger: logger}
	profileHandler := &handlers.ProfileHandler{Store: stores.Profiles, Logger: logger}
	visitHandler := &handlers.VisitHandler{Store: stores.Counters, Hub: wsHub, Logger: logger}
	uploadHandler := &handlers.UploadHandler{Uploader: s3Uploader, Logger: logger}
	sitemapHandler := &handlers.SitemapHandler{
		Companies: stores.Companies,
		Brands:    stores.Brands,
		Products:  stores.Products,
		BaseURL:   cfg.Site.BaseURL,
		Logger:    logger,
	}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub, JWTSecret: jwtSecret, Logger: logger}

	// Sitemap và robots nằm ở root để crawler tìm thấy đúng chỗ.
	router.GET("/sitemap.xml", sitemapHandler.Sitemap)
	router.GET("/robots.txt", sitemapHandler.Robots)

	apiV1 := router.Group("/api/v1")
	{
		// Route cho WebSocket (dashboard admin theo dõi lượt truy cập)
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// Nhóm API authentication
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
		}

		// === CÁC ROUTE KHÔNG YÊU CẦU XÁC THỰC ===
		public := apiV1.Group("/")
		{
			public.GET("/companies", companyHandler.ListCompanies)
			public.GET("/companies/:id", companyHandler.GetCompany)
			public.POST("/companies/:id/visits", companyHandler.RecordCompanyVisit)

			public.GET("/brands", brandHandler.ListBrands)
			public.GET("/brands/:id", brandHandler.GetBrand)

			public.GET("/products", productHandler.ListProducts)
			public.GET("/products/:id", productHandler.GetProduct)

			public.GET("/job-openings", jobHandler.ListJobOpenings)
			public.GET("/job-openings/:id", jobHandler.GetJobOpening)

			public.GET("/company-profile", profileHandler.GetProfile)

			public.GET("/visits", visitHandler.GetVisits)
			public.POST("/visits", visitHandler.RecordVisit)
		}

		// === CÁC ROUTE YÊU CẦU XÁC THỰC (PROTECTED) ===
		// Mọi thao tác ghi trên dữ liệu nghiệp vụ đều đi qua middleware.
		admin := apiV1.Group("/")
		admin.Use(middleware.Authenticate(jwtSecret))
		admin.Use(middleware.Authorize(models.RoleAdmin, models.RoleSuperAdmin))
		{
			admin.POST("/companies", companyHandler.CreateCompany)
			admin.PUT("/companies/:id", companyHandler.UpdateCompany)
			admin.DELETE("/companies/:id", companyHandler.DeleteCompany)

			admin.POST("/brands", brandHandler.CreateBrand)
			admin.PUT("/brands/:id", brandHandler.UpdateBrand)
			admin.DELETE("/brands/:id", brandHandler.DeleteBrand)

			admin.POST("/products", productHandler.CreateProduct)
			admin.PUT("/products/:id", productHandler.UpdateProduct)
			admin.DELETE("/products/:id", productHandler.DeleteProduct)

			admin.POST("/job-openings", jobHandler.CreateJobOpening)
			admin.PUT("/job-openings/:id", jobHandler.UpdateJobOpening)
			admin.DELETE("/job-openings/:id", jobHandler.DeleteJobOpening)

			admin.PUT("/company-profile", profileHandler.UpsertProfile)

			admin.POST("/uploads", uploadHandler.Upload)
		}
	}

	return router
}
