package repository

import (
	"essay_edu_backend/internal/model"
	"strings"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	// 确保创建时间被设置
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	// 使用事务来处理插入操作
	return r.DB.Transaction(func(tx *gorm.DB) error {
		// 尝试直接插入
		if err := tx.Create(user).Error; err != nil {
			// 如果因为id字段错误失败，尝试使用另一种方式
			if strings.Contains(err.Error(), "Field 'id' doesn't have a default value") {
				// 先获取当前最大ID
				var maxID uint
				tx.Model(&model.User{}).Select("MAX(id)").Scan(&maxID)

				// 设置新ID
				user.ID = maxID + 1

				// 再次尝试插入
				return tx.Create(user).Error
			}
			return err
		}
		return nil
	})
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// UpdateLevel 调整用户默认写作水平
func (r *UserRepository) UpdateLevel(userID uint, level model.ProficiencyLevel) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("level", level).
		Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).
		Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}
