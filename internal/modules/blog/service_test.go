package blog

import (
	"context"
	"fmt"
	"testing"

	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/ranstack/portfolio-core/internal/pkg/storage"
	"github.com/ranstack/portfolio-core/internal/pkg/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeStorage records uploads and deletes instead of talking to R2.
type fakeStorage struct {
	uploads []storage.Object
	deletes []string
}

func (f *fakeStorage) Upload(_ context.Context, folder, filename, _ string, _ []byte) (*storage.Object, error) {
	obj := storage.Object{
		Key: fmt.Sprintf("%s/%d-%s", folder, len(f.uploads), filename),
	}
	obj.URL = "https://cdn.test/" + obj.Key
	f.uploads = append(f.uploads, obj)
	return &obj, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

func testService(t *testing.T) (*Service, *fakeStorage, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.BlogModel{}))

	author := models.UserModel{Email: "admin@example.com", Role: models.RoleAdmin, ProviderUID: "uid-1"}
	require.NoError(t, db.Create(&author).Error)

	store := &fakeStorage{}
	return NewService(db, store), store, author.ID
}

func testImage(name string) *upload.File {
	return &upload.File{Name: name, ContentType: "image/png", Data: []byte("png")}
}

func TestCreateDerivesSlug(t *testing.T) {
	svc, _, authorID := testService(t)

	blog, err := svc.Create(context.Background(), &CreateBlogDTO{
		Title:   "Hello, World! 2.0",
		Excerpt: "intro",
		Content: "body",
	}, authorID, nil)
	require.NoError(t, err)

	assert.Equal(t, "hello-world-20", blog.Slug)
	assert.Equal(t, 5, blog.ReadTime)
	assert.False(t, blog.IsPublished)
	assert.Nil(t, blog.PublishedAt)
	require.NotNil(t, blog.AuthorID)
	assert.Equal(t, authorID, *blog.AuthorID)
}

func TestCreateDuplicateTitleRejected(t *testing.T) {
	svc, _, authorID := testService(t)
	ctx := context.Background()

	dto := &CreateBlogDTO{Title: "Same Title", Excerpt: "e", Content: "c"}
	_, err := svc.Create(ctx, dto, authorID, nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto, authorID, nil)
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestCreatePublishedSetsPublishedAt(t *testing.T) {
	svc, _, authorID := testService(t)

	published := true
	blog, err := svc.Create(context.Background(), &CreateBlogDTO{
		Title:       "Launch Post",
		Excerpt:     "e",
		Content:     "c",
		IsPublished: &published,
	}, authorID, nil)
	require.NoError(t, err)

	assert.True(t, blog.IsPublished)
	assert.NotNil(t, blog.PublishedAt)
}

func TestPartialUpdateIsIdempotent(t *testing.T) {
	svc, _, authorID := testService(t)
	ctx := context.Background()

	blog, err := svc.Create(ctx, &CreateBlogDTO{Title: "Original", Excerpt: "e", Content: "c"}, authorID, nil)
	require.NoError(t, err)

	excerpt := "updated excerpt"
	dto := &UpdateBlogDTO{Excerpt: &excerpt}

	first, err := svc.Update(ctx, blog.ID, dto, nil)
	require.NoError(t, err)
	second, err := svc.Update(ctx, blog.ID, dto, nil)
	require.NoError(t, err)

	assert.Equal(t, "updated excerpt", second.Excerpt)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Slug, second.Slug)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.IsPublished, second.IsPublished)
}

func TestUpdateTitleRegeneratesSlug(t *testing.T) {
	svc, _, authorID := testService(t)
	ctx := context.Background()

	blog, err := svc.Create(ctx, &CreateBlogDTO{Title: "First Title", Excerpt: "e", Content: "c"}, authorID, nil)
	require.NoError(t, err)
	assert.Equal(t, "first-title", blog.Slug)

	title := "Second Title"
	updated, err := svc.Update(ctx, blog.ID, &UpdateBlogDTO{Title: &title}, nil)
	require.NoError(t, err)
	assert.Equal(t, "second-title", updated.Slug)
}

func TestPublishTransition(t *testing.T) {
	svc, _, authorID := testService(t)
	ctx := context.Background()

	blog, err := svc.Create(ctx, &CreateBlogDTO{Title: "Draft", Excerpt: "e", Content: "c"}, authorID, nil)
	require.NoError(t, err)
	require.Nil(t, blog.PublishedAt)

	published := true
	blog, err = svc.Update(ctx, blog.ID, &UpdateBlogDTO{IsPublished: &published}, nil)
	require.NoError(t, err)
	assert.True(t, blog.IsPublished)
	assert.NotNil(t, blog.PublishedAt)

	unpublished := false
	blog, err = svc.Update(ctx, blog.ID, &UpdateBlogDTO{IsPublished: &unpublished}, nil)
	require.NoError(t, err)
	assert.False(t, blog.IsPublished)
	assert.Nil(t, blog.PublishedAt)
}

func TestGetBySlugIncrementsViews(t *testing.T) {
	svc, _, authorID := testService(t)
	ctx := context.Background()

	published := true
	blog, err := svc.Create(ctx, &CreateBlogDTO{
		Title: "Popular", Excerpt: "e", Content: "c", IsPublished: &published,
	}, authorID, nil)
	require.NoError(t, err)

	got, err := svc.GetBySlug(blog.Slug, false)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)

	got, err = svc.GetBySlug(blog.Slug, false)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)
}

func TestGetBySlugHidesUnpublished(t *testing.T) {
	svc, _, authorID := testService(t)

	blog, err := svc.Create(context.Background(), &CreateBlogDTO{Title: "Hidden", Excerpt: "e", Content: "c"}, authorID, nil)
	require.NoError(t, err)

	got, err := svc.GetBySlug(blog.Slug, false)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetBySlugAdminSeesDraft(t *testing.T) {
	svc, _, authorID := testService(t)

	blog, err := svc.Create(context.Background(), &CreateBlogDTO{Title: "Preview Me", Excerpt: "e", Content: "c"}, authorID, nil)
	require.NoError(t, err)

	got, err := svc.GetBySlug(blog.Slug, true)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Preview Me", got.Title)
	assert.False(t, got.IsPublished)
}

func TestListFiltersPublished(t *testing.T) {
	svc, _, authorID := testService(t)
	ctx := context.Background()

	published := true
	_, err := svc.Create(ctx, &CreateBlogDTO{Title: "Live", Excerpt: "e", Content: "c", IsPublished: &published}, authorID, nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateBlogDTO{Title: "Draft", Excerpt: "e", Content: "c"}, authorID, nil)
	require.NoError(t, err)

	blogs, pag, err := svc.List(pagination.Query{Page: 1, Limit: 10}, ListQuery{})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "Live", blogs[0].Title)
	assert.Equal(t, int64(1), pag.Total)

	all, _, err := svc.AdminList(pagination.Query{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListSearch(t *testing.T) {
	svc, _, authorID := testService(t)
	ctx := context.Background()

	published := true
	_, err := svc.Create(ctx, &CreateBlogDTO{Title: "Go Concurrency", Excerpt: "channels", Content: "c", IsPublished: &published}, authorID, nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateBlogDTO{Title: "Cooking Pasta", Excerpt: "dinner", Content: "c", IsPublished: &published}, authorID, nil)
	require.NoError(t, err)

	blogs, _, err := svc.List(pagination.Query{Page: 1, Limit: 10}, ListQuery{Search: "concurrency"})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "Go Concurrency", blogs[0].Title)
}

func TestDeleteRemovesStoredImage(t *testing.T) {
	svc, store, authorID := testService(t)
	ctx := context.Background()

	blog, err := svc.Create(ctx, &CreateBlogDTO{Title: "With Image", Excerpt: "e", Content: "c"}, authorID, testImage("cover.png"))
	require.NoError(t, err)
	require.Len(t, store.uploads, 1)
	require.NotEmpty(t, blog.FeaturedImageKey)

	ok, err := svc.Delete(ctx, blog.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{blog.FeaturedImageKey}, store.deletes)

	got, err := svc.GetByID(blog.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateReplacesImage(t *testing.T) {
	svc, store, authorID := testService(t)
	ctx := context.Background()

	blog, err := svc.Create(ctx, &CreateBlogDTO{Title: "Cover Swap", Excerpt: "e", Content: "c"}, authorID, testImage("old.png"))
	require.NoError(t, err)
	oldKey := blog.FeaturedImageKey

	updated, err := svc.Update(ctx, blog.ID, &UpdateBlogDTO{}, testImage("new.png"))
	require.NoError(t, err)

	assert.Len(t, store.uploads, 2)
	assert.Equal(t, []string{oldKey}, store.deletes)
	assert.NotEqual(t, oldKey, updated.FeaturedImageKey)
}

func TestDeleteMissingBlog(t *testing.T) {
	svc, store, _ := testService(t)

	ok, err := svc.Delete(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, store.deletes)
}
