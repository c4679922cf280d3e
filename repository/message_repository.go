package repository

import (
	"context"

	"gorm.io/gorm"

	"study-forum-app/entity"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (repository MessageRepository) FindByRoom(ctx context.Context, db *gorm.DB, roomID uint) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Preload("User").
		Scopes(byRecency).
		Find(&messages).Error
	return messages, err
}

func (repository MessageRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uint) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("User").
		Preload("Room").
		Scopes(byRecency).
		Find(&messages).Error
	return messages, err
}

// FindRecentByTopicName returns the newest messages whose room's topic name
// contains q, independent of any room-level search on the same query.
func (repository MessageRepository) FindRecentByTopicName(ctx context.Context, db *gorm.DB, q string, limit int) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Joins("JOIN room ON room.id = message.room_id").
		Joins("LEFT JOIN topic ON topic.id = room.topic_id").
		Where("LOWER(topic.name) LIKE ?", contains(q)).
		Preload("User").
		Preload("Room").
		Order("message.created_at DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// FindAllNewest backs the activity feed: every message, newest first.
func (repository MessageRepository) FindAllNewest(ctx context.Context, db *gorm.DB) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}
