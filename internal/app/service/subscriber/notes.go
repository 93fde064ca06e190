package subscriber

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pslmedia/backoffice/internal/models"
)

type CreateNoteRequest struct {
	Name string    `json:"name" binding:"required"`
	Body string    `json:"body" binding:"required"`
	Date time.Time `json:"note_date"`
	// SubscriberIDs attaches the note to subscribers on creation.
	SubscriberIDs []uint `json:"subscriber_ids"`
}

// CreateNote stores an operator annotation and links it to the given
// subscribers.
func (s *Service) CreateNote(ctx context.Context, req *CreateNoteRequest) (*models.Note, error) {
	date := req.Date
	if date.IsZero() {
		date = s.clk.Now()
	}
	note := &models.Note{Name: req.Name, Body: req.Body, NoteDate: date}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(note).Error; err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}
		for _, id := range req.SubscriberIDs {
			var count int64
			if err := tx.Model(&models.Subscriber{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check subscriber: %w", err)
			}
			if count == 0 {
				return ErrNotFound
			}
			link := &models.NoteSubscriber{NoteID: note.ID, SubscriberID: id}
			if err := tx.Create(link).Error; err != nil {
				return fmt.Errorf("failed to link note: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// ListNotes returns the notes attached to a subscriber, newest first.
func (s *Service) ListNotes(ctx context.Context, subscriberID uint) ([]*models.Note, error) {
	var sub models.Subscriber
	if err := s.db.WithContext(ctx).First(&sub, subscriberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load subscriber: %w", err)
	}

	var notes []*models.Note
	if err := s.db.WithContext(ctx).
		Joins("JOIN note_subscriber ns ON ns.note_id = note.id").
		Where("ns.subscriber_id = ?", subscriberID).
		Order("note.note_date desc").
		Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}
