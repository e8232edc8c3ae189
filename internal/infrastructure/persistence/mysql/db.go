package mysql

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
)

// NewDB 创建目录库连接
// 设计说明：
// 1. 目录库只读，不做AutoMigrate，表结构由书店服务维护
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Catalog.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接目录库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Catalog.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Catalog.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Catalog.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("目录库连接测试失败: %w", err)
	}

	slog.Info("目录库连接成功", "host", cfg.Catalog.Host, "dbname", cfg.Catalog.DBName)

	return db, nil
}

// BookModel books表映射(只读取导入所需的列)
// 价格以"分"为单位存储
type BookModel struct {
	ID        uint           `gorm:"primaryKey"`
	ISBN      string         `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Title     string         `gorm:"size:200;not null;comment:书名"`
	Author    string         `gorm:"size:100;not null;comment:作者"`
	Price     int64          `gorm:"not null;comment:价格(分)"`
	Stock     int            `gorm:"default:0;comment:库存数量"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}
