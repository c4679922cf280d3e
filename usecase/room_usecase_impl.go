package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"study-forum-app/dto/req"
	"study-forum-app/dto/res"
	"study-forum-app/entity"
	"study-forum-app/repository"
)

const (
	homeTopicLimit   = 5
	homeMessageLimit = 5
)

const timeLayout = "2006-01-02 15:04:05"

type RoomUsecaseImpl struct {
	*repository.RoomRepository
	*repository.TopicRepository
	*repository.MessageRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewRoomUsecase(roomRepository *repository.RoomRepository, topicRepository *repository.TopicRepository, messageRepository *repository.MessageRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) RoomUsecase {
	return &RoomUsecaseImpl{
		RoomRepository:    roomRepository,
		TopicRepository:   topicRepository,
		MessageRepository: messageRepository,
		Validate:          validate,
		DB:                DB,
		Logger:            logger,
	}
}

// Home assembles the landing page: rooms matching q across name, description
// and topic name, the first few topics, and the newest messages whose room
// topic matches the same q.
func (uc *RoomUsecaseImpl) Home(ctx context.Context, q string) (res.HomeResponse, error) {
	rooms, err := uc.RoomRepository.Search(ctx, uc.DB, q)
	if err != nil {
		return res.HomeResponse{}, err
	}

	topics, err := uc.TopicRepository.FindFirst(ctx, uc.DB, homeTopicLimit)
	if err != nil {
		return res.HomeResponse{}, err
	}

	messages, err := uc.MessageRepository.FindRecentByTopicName(ctx, uc.DB, q, homeMessageLimit)
	if err != nil {
		return res.HomeResponse{}, err
	}

	return res.HomeResponse{
		Rooms:        rooms,
		Topics:       topics,
		RoomCount:    len(rooms),
		TopicCount:   len(topics),
		RoomMessages: messages,
	}, nil
}

func (uc *RoomUsecaseImpl) GetRoom(ctx context.Context, id uint) (res.RoomDetailResponse, error) {
	room, err := uc.RoomRepository.FindByIdWithRelations(ctx, uc.DB, id)
	if err != nil {
		return res.RoomDetailResponse{}, err
	}

	messages, err := uc.MessageRepository.FindByRoom(ctx, uc.DB, room.ID)
	if err != nil {
		return res.RoomDetailResponse{}, err
	}

	return res.RoomDetailResponse{
		Room:         *room,
		RoomMessages: messages,
		Participants: room.Participants,
	}, nil
}

// GetRoomForEdit loads a room for the update form. Only the host may see or
// submit that form.
func (uc *RoomUsecaseImpl) GetRoomForEdit(ctx context.Context, actorID, id uint) (entity.Room, error) {
	room, err := uc.RoomRepository.FindByIdWithRelations(ctx, uc.DB, id)
	if err != nil {
		return entity.Room{}, err
	}

	if room.HostID == nil || *room.HostID != actorID {
		return entity.Room{}, ErrNotAllowed
	}

	return *room, nil
}

func (uc *RoomUsecaseImpl) CreateRoom(ctx context.Context, hostID uint, request *req.RoomRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate room request")
		return err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	topic, err := uc.TopicRepository.GetOrCreate(ctx, trx, request.Topic)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to resolve topic")
		return err
	}

	room := &entity.Room{
		HostID:      &hostID,
		TopicID:     &topic.ID,
		Name:        request.Name,
		Description: request.Description,
	}

	if err := uc.RoomRepository.Save(ctx, trx, room); err != nil {
		uc.Logger.WithError(err).Error("failed to save room")
		return err
	}

	return trx.Commit().Error
}

// UpdateRoom overwrites name, description and topic. The topic is re-resolved
// through the same get-or-create rule as creation, and saving refreshes the
// room's updated timestamp.
func (uc *RoomUsecaseImpl) UpdateRoom(ctx context.Context, actorID, id uint, request *req.RoomRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate room request")
		return err
	}

	var room entity.Room
	if err := uc.RoomRepository.FindById(ctx, uc.DB, &room, id); err != nil {
		return err
	}

	if room.HostID == nil || *room.HostID != actorID {
		return ErrNotAllowed
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	topic, err := uc.TopicRepository.GetOrCreate(ctx, trx, request.Topic)
	if err != nil {
		return err
	}

	room.TopicID = &topic.ID
	room.Name = request.Name
	room.Description = request.Description

	if err := uc.RoomRepository.Update(ctx, trx, &room); err != nil {
		uc.Logger.WithError(err).Error("failed to update room")
		return err
	}

	return trx.Commit().Error
}

// DeleteRoom removes a room and cascades to its messages. There is no host
// check here: any authenticated user who reaches the confirmation can delete.
func (uc *RoomUsecaseImpl) DeleteRoom(ctx context.Context, id uint) error {
	var room entity.Room
	if err := uc.RoomRepository.FindById(ctx, uc.DB, &room, id); err != nil {
		return err
	}

	return uc.RoomRepository.Delete(ctx, uc.DB, &room)
}

func (uc *RoomUsecaseImpl) ListTopics(ctx context.Context, q string) ([]entity.Topic, error) {
	return uc.TopicRepository.Search(ctx, uc.DB, q)
}

func (uc *RoomUsecaseImpl) AllTopics(ctx context.Context) ([]entity.Topic, error) {
	var topics []entity.Topic
	err := uc.TopicRepository.FindAll(ctx, uc.DB, &topics)
	return topics, err
}

func (uc *RoomUsecaseImpl) GetAllRooms(ctx context.Context) ([]res.RoomResponse, error) {
	rooms, err := uc.RoomRepository.FindAllWithRelations(ctx, uc.DB)
	if err != nil {
		return nil, err
	}

	responses := make([]res.RoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, mapRoomResponse(&rooms[i]))
	}
	return responses, nil
}

func (uc *RoomUsecaseImpl) GetRoomResponse(ctx context.Context, id uint) (res.RoomResponse, error) {
	room, err := uc.RoomRepository.FindByIdWithRelations(ctx, uc.DB, id)
	if err != nil {
		return res.RoomResponse{}, err
	}
	return mapRoomResponse(room), nil
}

func mapRoomResponse(room *entity.Room) res.RoomResponse {
	participants := make([]uint, 0, len(room.Participants))
	for _, participant := range room.Participants {
		participants = append(participants, participant.ID)
	}

	return res.RoomResponse{
		ID:           room.ID,
		Host:         room.HostID,
		Topic:        room.TopicID,
		Name:         room.Name,
		Description:  room.Description,
		Participants: participants,
		Updated:      room.UpdatedAt.Format(timeLayout),
		Created:      room.CreatedAt.Format(timeLayout),
	}
}
