package repository

import (
	"context"

	"gorm.io/gorm"

	"study-forum-app/entity"
)

type TopicRepository struct {
	Repository[entity.Topic]
}

func NewTopicRepository() *TopicRepository {
	return &TopicRepository{}
}

// GetOrCreate looks a topic up by exact name and inserts one if absent.
// The lookup and the insert are two statements, so concurrent identical
// names can still produce duplicate rows.
func (repository TopicRepository) GetOrCreate(ctx context.Context, db *gorm.DB, name string) (entity.Topic, error) {
	var topic entity.Topic
	err := db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&topic, entity.Topic{Name: name}).Error
	return topic, err
}

func (repository TopicRepository) Search(ctx context.Context, db *gorm.DB, q string) ([]entity.Topic, error) {
	var topics []entity.Topic
	err := db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", contains(q)).
		Find(&topics).Error
	return topics, err
}

func (repository TopicRepository) FindFirst(ctx context.Context, db *gorm.DB, limit int) ([]entity.Topic, error) {
	var topics []entity.Topic
	err := db.WithContext(ctx).Limit(limit).Find(&topics).Error
	return topics, err
}

// Delete removes a topic and nulls out the reference on every room that
// pointed at it. The rooms themselves survive.
func (repository TopicRepository) Delete(ctx context.Context, db *gorm.DB, topic *entity.Topic) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Room{}).
			Where("topic_id = ?", topic.ID).
			UpdateColumn("topic_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(topic).Error
	})
}
