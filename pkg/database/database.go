package database

import (
	"fmt"
	"log"
	"pairbond_backend/internal/config"
	"pairbond_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Relationship{},
		&model.Category{},
		&model.Topic{},
		&model.SubTopic{},
		&model.Question{},
		&model.UserAnswer{},
		&model.Journal{},
		&model.JournalComment{},
		&model.DailyAppOpen{},
		&model.ActiveSubtopicSet{},
		&model.DeviceToken{},
		&model.AppSetting{},
		&model.Admin{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认应用配置
	var settingCount int64
	db.Model(&model.AppSetting{}).Count(&settingCount)
	if settingCount == 0 {
		defaults := []model.AppSetting{
			{Key: "min_app_version", Value: "1.0.0", Description: "客户端最低支持版本"},
			{Key: "streak_freeze_per_month", Value: "1", Description: "每月可用的连续天数冻结次数"},
			{Key: "journal_comment_limit", Value: "5", Description: "单条日记允许的评论数上限"},
		}
		for _, s := range defaults {
			db.Create(&s)
		}
	}

	// 空库时插入基础题库骨架（问题内容由管理后台维护）
	var categoryCount int64
	db.Model(&model.Category{}).Count(&categoryCount)
	if categoryCount == 0 {
		defaultCategories := []model.Category{
			{Name: "Never Have I Ever", Color: "#F06292", SortOrder: 1, IsActive: true},
			{Name: "This or That", Color: "#4FC3F7", SortOrder: 2, IsActive: true},
			{Name: "Would You Rather", Color: "#FFB74D", SortOrder: 3, IsActive: true},
		}
		for _, c := range defaultCategories {
			db.Create(&c)
		}

		defaultTopics := []model.Topic{
			{Name: "Icebreakers", SortOrder: 1, IsActive: true},
			{Name: "Us & Love", SortOrder: 2, IsActive: true},
			{Name: "Daily Questions", SortOrder: 3, IsActive: true},
		}
		for _, t := range defaultTopics {
			db.Create(&t)
		}
	}

	return db, nil
}
