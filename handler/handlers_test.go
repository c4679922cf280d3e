package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"study-forum-app/config/common"
	"study-forum-app/dto/res"
	"study-forum-app/entity"
	"study-forum-app/handler"
	"study-forum-app/middleware"
	"study-forum-app/repository"
	"study-forum-app/routes"
	"study-forum-app/security"
	"study-forum-app/testutil"
	"study-forum-app/usecase"
)

type testApp struct {
	app *fiber.App
	db  *gorm.DB
	jwt *security.JWT
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.NewTestDB(t)

	v := viper.New()
	v.Set("APP_NAME", "study-forum-test")
	v.Set("JWT_SECRET", "test-secret")
	cfg := &common.Config{Viper: v}

	log := logrus.New()
	log.SetOutput(io.Discard)

	jwt := security.NewJWT(cfg)
	mw := middleware.NewMiddleware(cfg, jwt, log)
	validate := validator.New()

	userRepo := repository.NewUserRepository()
	topicRepo := repository.NewTopicRepository()
	roomRepo := repository.NewRoomRepository()
	messageRepo := repository.NewMessageRepository()

	authUsecase := usecase.NewAuthUsecase(userRepo, validate, db, log, jwt)
	userUsecase := usecase.NewUserUsecase(userRepo, roomRepo, messageRepo, topicRepo, validate, db, log)
	roomUsecase := usecase.NewRoomUsecase(roomRepo, topicRepo, messageRepo, validate, db, log)
	messageUsecase := usecase.NewMessageUsecase(messageRepo, roomRepo, validate, db, log)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})

	route := routes.ConfigRoute{
		App:            app,
		Middleware:     mw,
		AuthHandler:    handler.NewAuthHandler(authUsecase, log),
		UserHandler:    handler.NewUserHandler(userUsecase, log),
		RoomHandler:    handler.NewRoomHandler(roomUsecase, log),
		MessageHandler: handler.NewMessageHandler(messageUsecase, log),
		ApiHandler:     handler.NewApiHandler(roomUsecase, log),
	}
	route.GetRoute()

	return &testApp{app: app, db: db, jwt: jwt}
}

func (ta *testApp) sessionCookie(t *testing.T, user *entity.User) *http.Cookie {
	t.Helper()

	token, err := ta.jwt.GenerateToken(user)
	require.NoError(t, err)
	return &http.Cookie{Name: security.SessionCookie, Value: token}
}

func TestApiListRooms(t *testing.T) {
	ta := newTestApp(t)

	alice := testutil.CreateUser(t, ta.db, "alice")
	topic := testutil.CreateTopic(t, ta.db, "Python")
	testutil.CreateRoom(t, ta.db, &alice, &topic, "Django Basics", "")
	testutil.CreateRoom(t, ta.db, &alice, nil, "Random", "")

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	resp, err := ta.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload res.CommonResponse[[]res.RoomResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Data, 2)
}

func TestApiGetRoom(t *testing.T) {
	ta := newTestApp(t)

	alice := testutil.CreateUser(t, ta.db, "alice")
	topic := testutil.CreateTopic(t, ta.db, "Python")
	room := testutil.CreateRoom(t, ta.db, &alice, &topic, "Django Basics", "")

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/rooms/%d", room.ID), nil)
	resp, err := ta.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload res.CommonResponse[res.RoomResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, room.ID, payload.Data.ID)
	require.NotNil(t, payload.Data.Host)
	assert.Equal(t, alice.ID, *payload.Data.Host)
}

func TestApiGetRoomNotFound(t *testing.T) {
	ta := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/999999", nil)
	resp, err := ta.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "missing room must yield 404, not a crash")

	var payload res.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, http.StatusNotFound, payload.StatusCode)
}

func TestUpdateRoomRejectsNonHost(t *testing.T) {
	ta := newTestApp(t)

	alice := testutil.CreateUser(t, ta.db, "alice")
	bob := testutil.CreateUser(t, ta.db, "bob")
	room := testutil.CreateRoom(t, ta.db, &alice, nil, "Django Basics", "")

	form := strings.NewReader("topic=Hacks&name=Hacked")
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/update-room/%d", room.ID), form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(ta.sessionCookie(t, &bob))

	resp, err := ta.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "You are not allowed here", string(body))

	var unchanged entity.Room
	require.NoError(t, ta.db.First(&unchanged, room.ID).Error)
	assert.Equal(t, "Django Basics", unchanged.Name)
}

func TestPostMessageAddsParticipant(t *testing.T) {
	ta := newTestApp(t)

	alice := testutil.CreateUser(t, ta.db, "alice")
	bob := testutil.CreateUser(t, ta.db, "bob")
	room := testutil.CreateRoom(t, ta.db, &alice, nil, "Django Basics", "")

	form := strings.NewReader("body=Hi")
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/room/%d", room.ID), form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(ta.sessionCookie(t, &bob))

	resp, err := ta.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/room/%d", room.ID), resp.Header.Get("Location"))

	var message entity.Message
	require.NoError(t, ta.db.Where("room_id = ?", room.ID).First(&message).Error)
	assert.Equal(t, bob.ID, message.UserID)

	got, err := repository.NewRoomRepository().FindByIdWithRelations(context.Background(), ta.db, room.ID)
	require.NoError(t, err)
	require.Len(t, got.Participants, 1)
	assert.Equal(t, "bob", got.Participants[0].Username)
}

func TestProtectedRouteRedirectsAnonymous(t *testing.T) {
	ta := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/create-room", nil)
	resp, err := ta.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
