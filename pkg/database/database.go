package database

import (
	"essay_edu_backend/internal/config"
	"essay_edu_backend/internal/model"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
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

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.WritingPrompt{},
		&model.PromptSourceText{},
		&model.EssaySubmission{},
		&model.EssayAnalysis{},
		&model.WritingProgress{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedDefaultPrompts(db)

	return db, nil
}

// seedDefaultPrompts 题库为空时插入示例题目
func seedDefaultPrompts(db *gorm.DB) {
	var count int64
	db.Model(&model.WritingPrompt{}).Count(&count)
	if count > 0 {
		return
	}

	now := time.Now()
	defaultPrompts := []model.WritingPrompt{
		{
			Title:       "Technology in Education",
			Description: "Some people believe technology improves education, while others argue it distracts students. Discuss both views and give your own opinion with specific examples.",
			Genre:       model.GenreArgumentative,
			Category:    "education",
			Level:       model.LevelIntermediate,
			Published:   true,
			PublishedAt: &now,
		},
		{
			Title:       "A Memorable Journey",
			Description: "Describe a journey that changed the way you see the world. Explain where you went, what happened, and why it was memorable.",
			Genre:       model.GenreNarrative,
			Category:    "life",
			Level:       model.LevelBeginner,
			Published:   true,
			PublishedAt: &now,
		},
		{
			Title:       "The Value of Failure",
			Description: "It is often said that failure teaches more than success. To what extent do you agree or disagree? Support your argument with evidence from your studies, reading, or experience.",
			Genre:       model.GenreArgumentative,
			Category:    "growth",
			Level:       model.LevelAdvanced,
			Published:   true,
			PublishedAt: &now,
		},
		{
			Title:       "How to Learn a Language",
			Description: "Explain the process you would recommend to someone starting to learn a new language. Organize your explanation into clear steps.",
			Genre:       model.GenreExpository,
			Category:    "education",
			Level:       model.LevelIntermediate,
			Published:   true,
			PublishedAt: &now,
		},
	}
	for _, p := range defaultPrompts {
		db.Create(&p)
	}
}
