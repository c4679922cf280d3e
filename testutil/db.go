package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"study-forum-app/entity"
)

// NewTestDB opens an in-memory sqlite database with foreign keys enforced
// and the production schema migrated, pinned to a single connection so every
// query sees the same memory store.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	conn, err := db.DB()
	if err != nil {
		t.Fatalf("get test connection: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entity.User{}, &entity.Topic{}, &entity.Room{}, &entity.Message{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() { _ = conn.Close() })
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, username string) entity.User {
	t.Helper()

	user := entity.User{Username: username, Email: username + "@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return user
}

func CreateTopic(t *testing.T, db *gorm.DB, name string) entity.Topic {
	t.Helper()

	topic := entity.Topic{Name: name}
	if err := db.Create(&topic).Error; err != nil {
		t.Fatalf("create topic %q: %v", name, err)
	}
	return topic
}

func CreateRoom(t *testing.T, db *gorm.DB, host *entity.User, topic *entity.Topic, name, description string) entity.Room {
	t.Helper()

	room := entity.Room{Name: name, Description: description}
	if host != nil {
		room.HostID = &host.ID
	}
	if topic != nil {
		room.TopicID = &topic.ID
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("create room %q: %v", name, err)
	}
	return room
}

func CreateMessage(t *testing.T, db *gorm.DB, user *entity.User, room *entity.Room, body string) entity.Message {
	t.Helper()

	message := entity.Message{RoomID: room.ID, UserID: user.ID, Body: body}
	if err := db.Create(&message).Error; err != nil {
		t.Fatalf("create message: %v", err)
	}
	return message
}
