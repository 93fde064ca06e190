package message

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pslmedia/backoffice/internal/models"
)

var (
	// ErrSubscriberNotFound is returned when the receiver does not exist.
	ErrSubscriberNotFound = errors.New("subscriber not found")
	// ErrMessageNotFound is returned for an unknown message id.
	ErrMessageNotFound = errors.New("message not found")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type SendRequest struct {
	SubscriberID uint   `json:"subscriber_id" binding:"required"`
	Message      string `json:"message" binding:"required"`
}

// Send delivers an internal message from an employee to a subscriber.
// Missing fields are rejected at binding time; no record is created.
func (s *Service) Send(ctx context.Context, senderID uint, req *SendRequest) (*models.UserMessage, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Subscriber{}).
		Where("id = ?", req.SubscriberID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check subscriber: %w", err)
	}
	if count == 0 {
		return nil, ErrSubscriberNotFound
	}

	msg := &models.UserMessage{
		SenderID:   senderID,
		ReceiverID: req.SubscriberID,
		Body:       req.Message,
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// History returns a subscriber's messages, newest first.
func (s *Service) History(ctx context.Context, subscriberID uint) ([]*models.UserMessage, error) {
	var rows []*models.UserMessage
	if err := s.db.WithContext(ctx).
		Preload("Sender").
		Where("receiver_id = ?", subscriberID).
		Order("sent_at desc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load message history: %w", err)
	}
	return rows, nil
}

// MarkRead flips the read flag on one message.
func (s *Service) MarkRead(ctx context.Context, messageID uint) error {
	res := s.db.WithContext(ctx).Model(&models.UserMessage{}).
		Where("id = ?", messageID).Update("read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark message read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

type ContactRequest struct {
	Name          string `json:"name" form:"name" binding:"required"`
	Email         string `json:"email" form:"email" binding:"required,email"`
	ContactNumber string `json:"contact_number" form:"contact_number"`
	Message       string `json:"message" form:"message" binding:"required"`
}

// SubmitContact stores a website contact-form message.
func (s *Service) SubmitContact(ctx context.Context, req *ContactRequest) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:          req.Name,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Body:          req.Message,
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}
	return msg, nil
}

// ListContacts returns website contact messages, newest first.
func (s *Service) ListContacts(ctx context.Context) ([]*models.ContactMessage, error) {
	var rows []*models.ContactMessage
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return rows, nil
}
