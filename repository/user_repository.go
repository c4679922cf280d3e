package repository

import (
	"context"

	"gorm.io/gorm"

	"study-forum-app/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (repository UserRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return user, err
}
