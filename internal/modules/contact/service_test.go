package contact

import (
	"testing"

	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.ContactModel{}))
	return NewService(db)
}

func createMessage(t *testing.T, svc *Service) *models.ContactModel {
	t.Helper()
	msg, err := svc.Create(&CreateContactDTO{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "I have a project idea",
	})
	require.NoError(t, err)
	return msg
}

func TestCreate(t *testing.T) {
	svc := testService(t)

	msg := createMessage(t, svc)
	assert.False(t, msg.IsRead)
	assert.False(t, msg.IsReplied)
	assert.Nil(t, msg.RepliedAt)
}

func TestUpdateMarksRead(t *testing.T) {
	svc := testService(t)
	msg := createMessage(t, svc)

	read := true
	updated, err := svc.Update(msg.ID, &UpdateContactDTO{IsRead: &read})
	require.NoError(t, err)
	assert.True(t, updated.IsRead)
}

func TestReply(t *testing.T) {
	svc := testService(t)
	msg := createMessage(t, svc)

	replied, err := svc.Reply(msg.ID, &ReplyDTO{Message: "Thanks, let's talk"})
	require.NoError(t, err)

	assert.True(t, replied.IsReplied)
	assert.True(t, replied.IsRead)
	assert.Equal(t, "Thanks, let's talk", replied.ReplyMessage)
	require.NotNil(t, replied.RepliedAt)
}

func TestReplyMissingMessage(t *testing.T) {
	svc := testService(t)

	replied, err := svc.Reply("nope", &ReplyDTO{Message: "hi"})
	require.NoError(t, err)
	assert.Nil(t, replied)
}

func TestListReadFilter(t *testing.T) {
	svc := testService(t)

	first := createMessage(t, svc)
	createMessage(t, svc)

	read := true
	_, err := svc.Update(first.ID, &UpdateContactDTO{IsRead: &read})
	require.NoError(t, err)

	unread := false
	msgs, pag, err := svc.List(pagination.Query{Page: 1, Limit: 10}, ListQuery{IsRead: &unread})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, int64(1), pag.Total)
	assert.False(t, msgs[0].IsRead)
}

func TestDelete(t *testing.T) {
	svc := testService(t)
	msg := createMessage(t, svc)

	ok, err := svc.Delete(msg.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.GetByID(msg.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = svc.Delete(msg.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
