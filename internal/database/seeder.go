package database

import (
	"context"
	"log"

	"sale-company-api-server/config"
	"sale-company-api-server/internal/auth"
	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

// SeedSuperAdmin tạo tài khoản super_admin đầu tiên nếu collection admins
// còn trống. Email/mật khẩu lấy từ config; bỏ qua nếu không cấu hình.
func SeedSuperAdmin(ctx context.Context, admins store.AdminStore, cfg config.SeedConfig) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("Seed admin not configured. Seeding skipped.")
		return nil
	}

	count, err := admins.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin account already exists. Seeding skipped.")
		return nil
	}

	log.Println("No admin account found. Seeding super admin...")
	hashedPassword, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	name := cfg.AdminName
	if name == "" {
		name = "Super Admin"
	}

	superAdmin := &models.Admin{
		Email:    cfg.AdminEmail,
		Name:     name,
		Password: hashedPassword,
		Role:     models.RoleSuperAdmin,
	}
	if err := admins.Create(ctx, superAdmin); err != nil {
		return err
	}

	log.Println("Super admin seeded successfully.")
	return nil
}
