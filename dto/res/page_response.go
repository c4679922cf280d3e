package res

import "study-forum-app/entity"

// Page responses bundle everything a server-rendered view needs. They are
// handed straight to the template engine, so fields keep entity types.

type HomeResponse struct {
	Rooms        []entity.Room
	Topics       []entity.Topic
	RoomCount    int
	TopicCount   int
	RoomMessages []entity.Message
}

type RoomDetailResponse struct {
	Room         entity.Room
	RoomMessages []entity.Message
	Participants []entity.User
}

type ProfileResponse struct {
	User         entity.User
	Rooms        []entity.Room
	RoomMessages []entity.Message
	Topics       []entity.Topic
	RoomCount    int
	TopicCount   int
}
