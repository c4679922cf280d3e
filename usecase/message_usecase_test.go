package usecase

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"study-forum-app/dto/req"
	"study-forum-app/entity"
	"study-forum-app/repository"
	"study-forum-app/testutil"
)

func newMessageUsecase(t *testing.T) (MessageUsecase, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t)
	uc := NewMessageUsecase(
		repository.NewMessageRepository(),
		repository.NewRoomRepository(),
		validator.New(),
		db,
		newTestLogger(),
	)
	return uc, db
}

func TestPostMessageJoinsParticipants(t *testing.T) {
	uc, db := newMessageUsecase(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	room := testutil.CreateRoom(t, db, &alice, nil, "Django Basics", "")

	require.NoError(t, uc.PostMessage(ctx, bob.ID, room.ID, &req.MessageRequest{Body: "Hi"}))

	var message entity.Message
	require.NoError(t, db.Where("room_id = ?", room.ID).First(&message).Error)
	assert.Equal(t, bob.ID, message.UserID)
	assert.Equal(t, "Hi", message.Body)

	// posting again must not duplicate the membership
	require.NoError(t, uc.PostMessage(ctx, bob.ID, room.ID, &req.MessageRequest{Body: "Hi again"}))

	participants, err := repository.NewRoomRepository().FindByIdWithRelations(ctx, db, room.ID)
	require.NoError(t, err)
	require.Len(t, participants.Participants, 1)
	assert.Equal(t, bob.ID, participants.Participants[0].ID)
}

func TestPostMessageAnonymousFailsAtSchema(t *testing.T) {
	uc, db := newMessageUsecase(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	room := testutil.CreateRoom(t, db, &alice, nil, "Django Basics", "")

	// no session means user id 0, which violates the foreign key
	err := uc.PostMessage(ctx, 0, room.ID, &req.MessageRequest{Body: "Hi"})
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPostMessageMissingRoom(t *testing.T) {
	uc, db := newMessageUsecase(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	err := uc.PostMessage(ctx, alice.ID, 999999, &req.MessageRequest{Body: "Hi"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMessageAuthorOnly(t *testing.T) {
	uc, db := newMessageUsecase(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	room := testutil.CreateRoom(t, db, &alice, nil, "Django Basics", "")
	message := testutil.CreateMessage(t, db, &bob, &room, "mine")

	err := uc.DeleteMessage(ctx, alice.ID, message.ID)
	assert.ErrorIs(t, err, ErrNotAllowed)

	require.NoError(t, uc.DeleteMessage(ctx, bob.ID, message.ID))

	var count int64
	require.NoError(t, db.Model(&entity.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}
