package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/pkg/identity"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
	"gorm.io/gorm"
)

var (
	// ErrAdminExists guards the one-time setup route.
	ErrAdminExists = errors.New("admin account already exists")
	// ErrInvalidRole marks role values outside user|admin.
	ErrInvalidRole = errors.New("invalid role")
	// ErrLastAdmin protects the final admin account from removal or demotion.
	ErrLastAdmin = errors.New("cannot remove the last admin")
)

// Service handles admin dashboard and user management.
type Service struct {
	db       *gorm.DB
	provider identity.Provider
}

func NewService(db *gorm.DB, provider identity.Provider) *Service {
	return &Service{db: db, provider: provider}
}

// Setup creates the initial admin. It is self-guarding: once any admin row
// exists the route refuses with ErrAdminExists. The provider account is
// created first (or reused when the email is already registered there).
func (s *Service) Setup(ctx context.Context, dto *SetupDTO) (*models.UserModel, error) {
	var admins int64
	if err := s.db.Model(&models.UserModel{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error; err != nil {
		return nil, err
	}
	if admins > 0 {
		return nil, ErrAdminExists
	}

	uid, err := s.provider.CreateUser(ctx, dto.Email, dto.Password)
	if errors.Is(err, identity.ErrEmailExists) {
		uid, err = s.provider.GetUserByEmail(ctx, dto.Email)
	}
	if err != nil {
		return nil, err
	}

	// The email may already have logged in as a plain user; promote that row
	// instead of inserting a duplicate.
	var user models.UserModel
	findErr := s.db.First(&user, "provider_uid = ? OR email = ?", uid, dto.Email).Error
	switch {
	case errors.Is(findErr, gorm.ErrRecordNotFound):
		user = models.UserModel{
			Email:       dto.Email,
			Role:        models.RoleAdmin,
			ProviderUID: uid,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
	case findErr != nil:
		return nil, findErr
	default:
		if err := s.db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
			return nil, err
		}
		user.Role = models.RoleAdmin
	}

	return &user, nil
}

// Dashboard gathers collection counters and recent activity. The queries run
// concurrently; any single failure fails the whole call.
func (s *Service) Dashboard() (*Dashboard, error) {
	var d Dashboard

	count := func(model interface{}, dest *int64, conds ...interface{}) func() error {
		return func() error {
			tx := s.db.Model(model)
			if len(conds) > 0 {
				tx = tx.Where(conds[0], conds[1:]...)
			}
			return tx.Count(dest).Error
		}
	}

	tasks := []func() error{
		count(&models.BlogModel{}, &d.Stats.Blogs.Total),
		count(&models.BlogModel{}, &d.Stats.Blogs.Published, "is_published = ?", true),
		count(&models.ProjectModel{}, &d.Stats.Projects.Total),
		count(&models.ProjectModel{}, &d.Stats.Projects.Published, "is_published = ?", true),
		count(&models.AchievementModel{}, &d.Stats.Achievements.Total),
		count(&models.AchievementModel{}, &d.Stats.Achievements.Published, "is_published = ?", true),
		count(&models.ContactModel{}, &d.Stats.Contacts.Total),
		count(&models.ContactModel{}, &d.Stats.Contacts.Unread, "is_read = ?", false),
		count(&models.UserModel{}, &d.Stats.Users),
		func() error {
			return s.db.Order("created_at DESC").Limit(5).Find(&d.RecentBlogs).Error
		},
		func() error {
			return s.db.Order("created_at DESC").Limit(5).Find(&d.RecentContacts).Error
		},
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(tasks))
	for _, task := range tasks {
		wg.Add(1)
		go func(run func() error) {
			defer wg.Done()
			if err := run(); err != nil {
				errCh <- err
			}
		}(task)
	}
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}
	return &d, nil
}

// ListUsers returns users, newest first.
func (s *Service) ListUsers(q pagination.Query) ([]models.UserModel, response.Pagination, error) {
	tx := s.db.Model(&models.UserModel{}).Order("created_at DESC")

	var users []models.UserModel
	pag, err := pagination.Paginate(tx, q, &users)
	return users, pag, err
}

// UpdateRole changes a user's role. Demoting the last admin is refused.
func (s *Service) UpdateRole(id, role string) (*models.UserModel, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, ErrInvalidRole
	}

	var user models.UserModel
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if user.Role == models.RoleAdmin && role != models.RoleAdmin {
		last, err := s.isLastAdmin()
		if err != nil {
			return nil, err
		}
		if last {
			return nil, ErrLastAdmin
		}
	}

	if err := s.db.Model(&user).Update("role", role).Error; err != nil {
		return nil, err
	}
	user.Role = role
	return &user, nil
}

// DeleteUser removes a user. Deleting the last admin is refused.
func (s *Service) DeleteUser(id string) (bool, error) {
	var user models.UserModel
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if user.Role == models.RoleAdmin {
		last, err := s.isLastAdmin()
		if err != nil {
			return false, err
		}
		if last {
			return false, ErrLastAdmin
		}
	}

	if err := s.db.Delete(&models.UserModel{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) isLastAdmin() (bool, error) {
	var admins int64
	if err := s.db.Model(&models.UserModel{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error; err != nil {
		return false, err
	}
	return admins <= 1, nil
}
