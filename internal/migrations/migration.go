package migrations

import (
	"wholesale_manager/internal/logger"
	"wholesale_manager/internal/models"
	"wholesale_manager/internal/repository"
	"wholesale_manager/internal/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunMigrations ensures the schema exists and seeds the demo accounts.
func RunMigrations(db *gorm.DB) error {
	log := logger.Get()
	log.Info("running database migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Supplier{},
		&models.Product{},
		&models.Employee{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Transportation{},
	)
	if err != nil {
		return err
	}

	if err := seedDefaultUsers(db); err != nil {
		log.Warn("failed to seed default users", zap.Error(err))
	}

	log.Info("database migrations completed")
	return nil
}

func seedDefaultUsers(db *gorm.DB) error {
	log := logger.Get()

	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	if _, err := userRepo.GetByUsername("manager"); err == nil {
		return nil
	}

	manager := &models.User{
		Username: "manager",
		Name:     "Default Manager",
		Email:    "manager@example.com",
		Role:     string(models.RoleManager),
		IsActive: true,
	}
	if err := userService.CreateUser(manager, "admin123"); err != nil {
		return err
	}

	staff := &models.User{
		Username: "staff",
		Name:     "Default Staff",
		Email:    "staff@example.com",
		Role:     string(models.RoleStaff),
		IsActive: true,
	}
	if err := userService.CreateUser(staff, "staff123"); err != nil {
		return err
	}

	log.Info("seeded default users", zap.String("manager", "manager"), zap.String("staff", "staff"))
	return nil
}
