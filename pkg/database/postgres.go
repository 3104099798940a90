package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"divelog_studio/internal/pkg/config"
	"divelog_studio/pkg/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDatabase 初始化可选的远程数据库客户端
// host 未配置时返回 nil，领域状态始终只存在于内存中，
// 这个句柄不参与任何领域操作
func InitDatabase() *gorm.DB {
	cfg := config.GlobalConfig.Database
	if cfg.Host == "" {
		log.Println("Database host not configured, running memory-only")
		return nil
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)

	gormConfig := &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		PrepareStmt:                              true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}

	configureConnectionPool(sqlDB)

	// 生产环境建议使用 golang-migrate（见 cmd/migrate），AutoMigrate 仅作开发环境使用
	if config.GlobalConfig.App.Env == "dev" {
		if err := db.AutoMigrate(&model.StateSnapshot{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	return db
}

// configureConnectionPool 配置数据库连接池
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(time.Minute * 30)

	log.Println("Database connection pool configured successfully")
}
