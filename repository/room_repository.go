package repository

import (
	"context"

	"gorm.io/gorm"

	"study-forum-app/entity"
)

type RoomRepository struct {
	Repository[entity.Room]
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

// Search returns rooms whose name, description or topic name contains q,
// case-insensitively. An empty q matches every room.
func (repository RoomRepository) Search(ctx context.Context, db *gorm.DB, q string) ([]entity.Room, error) {
	like := contains(q)

	var rooms []entity.Room
	err := db.WithContext(ctx).
		Joins("LEFT JOIN topic ON topic.id = room.topic_id").
		Where("LOWER(room.name) LIKE ? OR LOWER(room.description) LIKE ? OR LOWER(topic.name) LIKE ?", like, like, like).
		Preload("Topic").
		Preload("Host").
		Order("room.updated_at DESC, room.created_at DESC").
		Find(&rooms).Error
	return rooms, err
}

func (repository RoomRepository) FindByIdWithRelations(ctx context.Context, db *gorm.DB, id uint) (*entity.Room, error) {
	var room entity.Room
	err := db.WithContext(ctx).
		Preload("Topic").
		Preload("Host").
		Preload("Participants").
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (repository RoomRepository) FindAllWithRelations(ctx context.Context, db *gorm.DB) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.WithContext(ctx).
		Preload("Topic").
		Preload("Host").
		Preload("Participants").
		Scopes(byRecency).
		Find(&rooms).Error
	return rooms, err
}

func (repository RoomRepository) FindByHost(ctx context.Context, db *gorm.DB, hostID uint) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Preload("Topic").
		Preload("Host").
		Scopes(byRecency).
		Find(&rooms).Error
	return rooms, err
}

// AddParticipant joins a user to the room's participant set. Appending an
// existing member is a no-op, so posting twice never duplicates the row.
func (repository RoomRepository) AddParticipant(ctx context.Context, db *gorm.DB, room *entity.Room, user *entity.User) error {
	return db.WithContext(ctx).Model(room).Association("Participants").Append(user)
}

// Delete removes the room together with its messages and participant join
// rows in one transaction, leaving no orphans behind.
func (repository RoomRepository) Delete(ctx context.Context, db *gorm.DB, room *entity.Room) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", room.ID).Delete(&entity.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Model(room).Association("Participants").Clear(); err != nil {
			return err
		}
		return tx.Delete(room).Error
	})
}
