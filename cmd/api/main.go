// server/cmd/api/main.go
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"sale-company-api-server/config"
	"sale-company-api-server/internal/api/routes"
	"sale-company-api-server/internal/database"
	"sale-company-api-server/internal/s3"
	"sale-company-api-server/internal/socket"
	"sale-company-api-server/internal/store"
	"sale-company-api-server/internal/store/mongostore"
)

func main() {
	// 1. Load configuration (.env chỉ dùng cho môi trường dev)
	_ = godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer logger.Sync()

	// 2. Kết nối MongoDB và đảm bảo index
	db, err := database.Connect(cfg.Mongo)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(ctx); err != nil {
			logger.Warn("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	// 3. Khởi tạo các store và seed tài khoản super admin đầu tiên
	mongoStores := mongostore.New(db)
	stores := &store.Stores{
		Companies:   mongoStores.Companies,
		Brands:      mongoStores.Brands,
		Products:    mongoStores.Products,
		JobOpenings: mongoStores.JobOpenings,
		Admins:      mongoStores.Admins,
		Profiles:    mongoStores.Profiles,
		Counters:    mongoStores.Counters,
	}

	if err := database.SeedSuperAdmin(ctx, stores.Admins, cfg.Seed); err != nil {
		logger.Fatal("failed to seed super admin", zap.Error(err))
	}

	// 4. Khởi tạo S3 uploader và WebSocket hub
	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		logger.Fatal("failed to initialize S3 uploader", zap.Error(err))
	}

	wsHub := socket.NewHub()

	// 5. Truyền tất cả các thành phần cần thiết vào router
	router := routes.SetupRouter(cfg, logger, stores, s3Uploader, wsHub)

	// 6. Start server
	logger.Info("starting API server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}
