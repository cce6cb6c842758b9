package achievement

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

func testService(t *testing.T) (*Service, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.AchievementModel{}))

	author := models.UserModel{Email: "admin@example.com", Role: models.RoleAdmin, ProviderUID: "uid-1"}
	require.NoError(t, db.Create(&author).Error)

	return NewService(db), author.ID
}

func TestCreateDefaults(t *testing.T) {
	svc, authorID := testService(t)

	a, err := svc.Create(&CreateAchievementDTO{
		Title: "Backend Development",
		Items: []string{"Go", "Postgres"},
	}, authorID)
	require.NoError(t, err)

	assert.Equal(t, "award", a.Icon)
	assert.Equal(t, "skills", a.Category)
	assert.False(t, a.IsPublished)
	assert.Equal(t, models.StringArray{"Go", "Postgres"}, a.Items)
}

func TestCreateRejectsUnknownIcon(t *testing.T) {
	svc, authorID := testService(t)

	_, err := svc.Create(&CreateAchievementDTO{Title: "Bad Icon", Icon: "sparkles"}, authorID)
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc, authorID := testService(t)

	_, err := svc.Create(&CreateAchievementDTO{Title: "Bad Category", Category: "trophies"}, authorID)
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestUpdateValidatesEnums(t *testing.T) {
	svc, authorID := testService(t)

	a, err := svc.Create(&CreateAchievementDTO{Title: "Cloud Work"}, authorID)
	require.NoError(t, err)

	icon := "cloud"
	updated, err := svc.Update(a.ID, &UpdateAchievementDTO{Icon: &icon})
	require.NoError(t, err)
	assert.Equal(t, "cloud", updated.Icon)

	bad := "confetti"
	_, err = svc.Update(a.ID, &UpdateAchievementDTO{Icon: &bad})
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestUpdateMissing(t *testing.T) {
	svc, _ := testService(t)

	title := "x"
	a, err := svc.Update("nope", &UpdateAchievementDTO{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestListOrdersAndFiltersPublished(t *testing.T) {
	svc, authorID := testService(t)

	published := true
	second := 2
	first := 1
	_, err := svc.Create(&CreateAchievementDTO{Title: "Second", SortOrder: &second, IsPublished: &published}, authorID)
	require.NoError(t, err)
	_, err = svc.Create(&CreateAchievementDTO{Title: "First", SortOrder: &first, IsPublished: &published}, authorID)
	require.NoError(t, err)
	_, err = svc.Create(&CreateAchievementDTO{Title: "Draft"}, authorID)
	require.NoError(t, err)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Title)
	assert.Equal(t, "Second", list[1].Title)

	all, pag, err := svc.AdminList(pagination.Query{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, int64(3), pag.Total)
}

func TestDelete(t *testing.T) {
	svc, authorID := testService(t)

	a, err := svc.Create(&CreateAchievementDTO{Title: "Temporary"}, authorID)
	require.NoError(t, err)

	ok, err := svc.Delete(a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Delete(a.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
