package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-forum-app/entity"
	"study-forum-app/testutil"
)

func TestRoomRepositorySearch(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRoomRepository()
	ctx := context.Background()

	host := testutil.CreateUser(t, db, "alice")
	python := testutil.CreateTopic(t, db, "Python")
	golang := testutil.CreateTopic(t, db, "Go")

	testutil.CreateRoom(t, db, &host, &python, "Django Basics", "web framework")
	testutil.CreateRoom(t, db, &host, &golang, "Concurrency", "goroutines and channels")
	testutil.CreateRoom(t, db, &host, nil, "Random Chatter", "anything goes")

	tcases := []struct {
		name     string
		q        string
		expected []string
	}{
		{
			name:     "empty query returns all rooms",
			q:        "",
			expected: []string{"Django Basics", "Concurrency", "Random Chatter"},
		},
		{
			name:     "match on room name",
			q:        "django",
			expected: []string{"Django Basics"},
		},
		{
			name:     "match on description",
			q:        "goroutines",
			expected: []string{"Concurrency"},
		},
		{
			name:     "match only via topic name",
			q:        "python",
			expected: []string{"Django Basics"},
		},
		{
			name:     "no match",
			q:        "haskell",
			expected: nil,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			rooms, err := repo.Search(ctx, db, tc.q)
			require.NoError(t, err)

			var names []string
			for _, room := range rooms {
				names = append(names, room.Name)
			}
			assert.ElementsMatch(t, tc.expected, names)
		})
	}
}

func TestRoomRepositorySearchOrdering(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRoomRepository()
	ctx := context.Background()

	host := testutil.CreateUser(t, db, "alice")
	first := testutil.CreateRoom(t, db, &host, nil, "first", "")
	time.Sleep(10 * time.Millisecond)
	testutil.CreateRoom(t, db, &host, nil, "second", "")

	rooms, err := repo.Search(ctx, db, "")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "second", rooms[0].Name, "newest room should list first")

	for _, room := range rooms {
		assert.False(t, room.UpdatedAt.Before(room.CreatedAt), "updated must never precede created")
	}

	// touching the older room moves it back to the top
	time.Sleep(10 * time.Millisecond)
	first.Description = "touched"
	require.NoError(t, db.Save(&first).Error)

	rooms, err = repo.Search(ctx, db, "")
	require.NoError(t, err)
	assert.Equal(t, "first", rooms[0].Name, "most recently updated room should list first")
}

func TestRoomRepositoryAddParticipantIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRoomRepository()
	ctx := context.Background()

	host := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	room := testutil.CreateRoom(t, db, &host, nil, "Django Basics", "")

	require.NoError(t, repo.AddParticipant(ctx, db, &room, &bob))
	require.NoError(t, repo.AddParticipant(ctx, db, &room, &bob))

	got, err := repo.FindByIdWithRelations(ctx, db, room.ID)
	require.NoError(t, err)
	require.Len(t, got.Participants, 1)
	assert.Equal(t, "bob", got.Participants[0].Username)
}

func TestRoomRepositoryDeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRoomRepository()
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	doomed := testutil.CreateRoom(t, db, &alice, nil, "doomed", "")
	survivor := testutil.CreateRoom(t, db, &alice, nil, "survivor", "")

	testutil.CreateMessage(t, db, &bob, &doomed, "one")
	testutil.CreateMessage(t, db, &bob, &doomed, "two")
	kept := testutil.CreateMessage(t, db, &bob, &survivor, "three")
	require.NoError(t, repo.AddParticipant(ctx, db, &doomed, &bob))

	require.NoError(t, repo.Delete(ctx, db, &doomed))

	var messageCount int64
	require.NoError(t, db.Model(&entity.Message{}).Count(&messageCount).Error)
	assert.Equal(t, int64(1), messageCount, "only the unrelated message should remain")

	var got entity.Message
	require.NoError(t, db.First(&got, kept.ID).Error)

	var roomCount int64
	require.NoError(t, db.Model(&entity.Room{}).Count(&roomCount).Error)
	assert.Equal(t, int64(1), roomCount)

	var joinCount int64
	require.NoError(t, db.Table("room_participants").Count(&joinCount).Error)
	assert.Zero(t, joinCount, "participant join rows must not outlive the room")
}
