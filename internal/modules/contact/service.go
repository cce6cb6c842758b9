package contact

import (
	"errors"
	"time"

	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
	"gorm.io/gorm"
)

// Service handles contact message business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create stores a message submitted through the public form.
func (s *Service) Create(dto *CreateContactDTO) (*models.ContactModel, error) {
	contact := models.ContactModel{
		Name:    dto.Name,
		Email:   dto.Email,
		Subject: dto.Subject,
		Message: dto.Message,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// List returns messages, newest first, optionally filtered by read state.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.ContactModel, response.Pagination, error) {
	tx := s.db.Model(&models.ContactModel{}).Order("created_at DESC")
	if lq.IsRead != nil {
		tx = tx.Where("is_read = ?", *lq.IsRead)
	}

	var contacts []models.ContactModel
	pag, err := pagination.Paginate(tx, q, &contacts)
	return contacts, pag, err
}

// GetByID fetches a message by ID.
func (s *Service) GetByID(id string) (*models.ContactModel, error) {
	var contact models.ContactModel
	if err := s.db.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

// Update patches a message's read flag.
func (s *Service) Update(id string, dto *UpdateContactDTO) (*models.ContactModel, error) {
	contact, err := s.GetByID(id)
	if err != nil || contact == nil {
		return contact, err
	}

	if dto.IsRead != nil {
		if err := s.db.Model(contact).Update("is_read", *dto.IsRead).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Reply records an admin reply and marks the message read.
func (s *Service) Reply(id string, dto *ReplyDTO) (*models.ContactModel, error) {
	contact, err := s.GetByID(id)
	if err != nil || contact == nil {
		return contact, err
	}

	err = s.db.Model(contact).Updates(map[string]interface{}{
		"reply_message": dto.Message,
		"is_replied":    true,
		"replied_at":    time.Now(),
		"is_read":       true,
	}).Error
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a message.
func (s *Service) Delete(id string) (bool, error) {
	contact, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	if contact == nil {
		return false, nil
	}
	if err := s.db.Delete(&models.ContactModel{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}
