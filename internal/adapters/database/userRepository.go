package database

import (
	"dhvanicast/internal/config"
	"dhvanicast/internal/core/user"
)

// UserRepositoryDatabase پیاده‌سازی UserRepository برای دیتابیس
type UserRepositoryDatabase struct{}

func NewUserRepositoryDatabase() *UserRepositoryDatabase {
	return &UserRepositoryDatabase{}
}

func (repo *UserRepositoryDatabase) Create(u *user.User) (*user.User, error) {
	if err := config.DB.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByUsernameOrMobile(username, mobile string) (*user.User, error) {
	var u user.User
	if err := config.DB.Where("username = ? OR mobile = ?", username, mobile).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(username string) (*user.User, error) {
	var u user.User
	if err := config.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByID(id string) (*user.User, error) {
	var u user.User
	if err := config.DB.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
