package admin

import (
	"context"
	"fmt"
	"testing"

	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/pkg/identity"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubProvider satisfies identity.Provider without network calls.
type stubProvider struct {
	created map[string]string // email -> uid
}

func (s *stubProvider) VerifyIDToken(context.Context, string) (*identity.Token, error) {
	return nil, fmt.Errorf("not supported")
}

func (s *stubProvider) CreateUser(_ context.Context, email, _ string) (string, error) {
	if _, ok := s.created[email]; ok {
		return "", identity.ErrEmailExists
	}
	uid := fmt.Sprintf("uid-%d", len(s.created)+1)
	s.created[email] = uid
	return uid, nil
}

func (s *stubProvider) GetUserByEmail(_ context.Context, email string) (string, error) {
	uid, ok := s.created[email]
	if !ok {
		return "", fmt.Errorf("no account for %s", email)
	}
	return uid, nil
}

func testService(t *testing.T) (*Service, *gorm.DB, *stubProvider) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.BlogModel{},
		&models.ProjectModel{},
		&models.AchievementModel{},
		&models.ContactModel{},
	))

	provider := &stubProvider{created: map[string]string{}}
	return NewService(db, provider), db, provider
}

func TestSetupCreatesFirstAdmin(t *testing.T) {
	svc, db, _ := testService(t)

	user, err := svc.Setup(context.Background(), &SetupDTO{Email: "boss@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "boss@example.com", user.Email)

	var count int64
	require.NoError(t, db.Model(&models.UserModel{}).Where("role = ?", models.RoleAdmin).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetupRefusesSecondAdmin(t *testing.T) {
	svc, _, _ := testService(t)
	ctx := context.Background()

	_, err := svc.Setup(ctx, &SetupDTO{Email: "boss@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Setup(ctx, &SetupDTO{Email: "other@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrAdminExists)
}

func TestSetupPromotesExistingUser(t *testing.T) {
	svc, db, provider := testService(t)

	// The email already has a provider account and a local "user" row from a
	// previous login.
	provider.created["boss@example.com"] = "uid-existing"
	existing := models.UserModel{Email: "boss@example.com", Role: models.RoleUser, ProviderUID: "uid-existing"}
	require.NoError(t, db.Create(&existing).Error)

	user, err := svc.Setup(context.Background(), &SetupDTO{Email: "boss@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)

	var count int64
	require.NoError(t, db.Model(&models.UserModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLastAdminCannotBeDeleted(t *testing.T) {
	svc, db, _ := testService(t)

	admin := models.UserModel{Email: "boss@example.com", Role: models.RoleAdmin, ProviderUID: "uid-1"}
	require.NoError(t, db.Create(&admin).Error)

	_, err := svc.DeleteUser(admin.ID)
	assert.ErrorIs(t, err, ErrLastAdmin)

	// With a second admin the delete goes through.
	second := models.UserModel{Email: "two@example.com", Role: models.RoleAdmin, ProviderUID: "uid-2"}
	require.NoError(t, db.Create(&second).Error)

	ok, err := svc.DeleteUser(admin.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLastAdminCannotBeDemoted(t *testing.T) {
	svc, db, _ := testService(t)

	admin := models.UserModel{Email: "boss@example.com", Role: models.RoleAdmin, ProviderUID: "uid-1"}
	require.NoError(t, db.Create(&admin).Error)

	_, err := svc.UpdateRole(admin.ID, models.RoleUser)
	assert.ErrorIs(t, err, ErrLastAdmin)
}

func TestUpdateRoleValidation(t *testing.T) {
	svc, db, _ := testService(t)

	user := models.UserModel{Email: "u@example.com", Role: models.RoleUser, ProviderUID: "uid-1"}
	require.NoError(t, db.Create(&user).Error)

	_, err := svc.UpdateRole(user.ID, "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	updated, err := svc.UpdateRole(user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}

func TestUpdateRoleMissingUser(t *testing.T) {
	svc, _, _ := testService(t)

	user, err := svc.UpdateRole("nope", models.RoleAdmin)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestDashboardCounts(t *testing.T) {
	svc, db, _ := testService(t)

	user := models.UserModel{Email: "u@example.com", Role: models.RoleAdmin, ProviderUID: "uid-1"}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, db.Create(&models.BlogModel{Title: "a", Slug: "a", IsPublished: true}).Error)
	require.NoError(t, db.Create(&models.BlogModel{Title: "b", Slug: "b"}).Error)
	require.NoError(t, db.Create(&models.ProjectModel{Title: "p", Slug: "p", IsPublished: true}).Error)
	require.NoError(t, db.Create(&models.ContactModel{Name: "n", Email: "e@x.com", Subject: "s", Message: "m"}).Error)
	require.NoError(t, db.Create(&models.ContactModel{Name: "n2", Email: "e@x.com", Subject: "s", Message: "m", IsRead: true}).Error)

	d, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(2), d.Stats.Blogs.Total)
	assert.Equal(t, int64(1), d.Stats.Blogs.Published)
	assert.Equal(t, int64(1), d.Stats.Projects.Total)
	assert.Equal(t, int64(2), d.Stats.Contacts.Total)
	assert.Equal(t, int64(1), d.Stats.Contacts.Unread)
	assert.Equal(t, int64(1), d.Stats.Users)
	assert.Len(t, d.RecentBlogs, 2)
	assert.Len(t, d.RecentContacts, 2)
}

func TestListUsers(t *testing.T) {
	svc, db, _ := testService(t)

	for i := 0; i < 3; i++ {
		u := models.UserModel{
			Email:       fmt.Sprintf("u%d@example.com", i),
			Role:        models.RoleUser,
			ProviderUID: fmt.Sprintf("uid-%d", i),
		}
		require.NoError(t, db.Create(&u).Error)
	}

	users, pag, err := svc.ListUsers(pagination.Query{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(3), pag.Total)
	assert.Equal(t, 2, pag.Pages)
}
