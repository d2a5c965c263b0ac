package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// ProficiencyLevel 用户英语写作水平
type ProficiencyLevel string

const (
	LevelBeginner     ProficiencyLevel = "beginner"
	LevelIntermediate ProficiencyLevel = "intermediate"
	LevelAdvanced     ProficiencyLevel = "advanced"
)

// ValidLevel 校验水平取值是否合法
func ValidLevel(l ProficiencyLevel) bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// swagger:model User
type User struct {
	BaseModel
	Name      string           `gorm:"size:100;not null" json:"Name"`
	Email     string           `gorm:"size:100;unique;not null" json:"Email"`
	Password  string           `gorm:"size:100;not null" json:"-"`
	Role      UserRole         `gorm:"type:enum('student','teacher','admin');default:'student'" json:"Role"`
	Level     ProficiencyLevel `gorm:"type:enum('beginner','intermediate','advanced');default:'intermediate'" json:"Level"` // 默认写作水平，可被单次提交覆盖
	Language  string           `gorm:"size:10;default:'en'" json:"Language"`
	Avatar    string           `gorm:"size:255" json:"avatar"`
	Disabled  bool             `gorm:"default:false" json:"Disabled"`
	LastLogin time.Time        `gorm:"default:CURRENT_TIMESTAMP(3)" json:"LastLogin"`
	LastSeen  time.Time        `gorm:"default:CURRENT_TIMESTAMP(3)" json:"LastSeen"`
}

func (User) TableName() string {
	return "users"
}
