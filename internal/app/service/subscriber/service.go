package subscriber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pslmedia/backoffice/internal/models"
	"github.com/pslmedia/backoffice/pkg/clock"
	cfgpkg "github.com/pslmedia/backoffice/pkg/config"
	"github.com/pslmedia/backoffice/pkg/hash"
	"github.com/pslmedia/backoffice/pkg/logctx"
	"github.com/pslmedia/backoffice/pkg/tool"
	"github.com/pslmedia/backoffice/pkg/types"
)

type Service struct {
	cfg *cfgpkg.Config
	db  *gorm.DB
	log *zap.SugaredLogger
	clk clock.Clock
}

func NewService(cfg *cfgpkg.Config, db *gorm.DB, log *zap.SugaredLogger, clk clock.Clock) *Service {
	return &Service{cfg: cfg, db: db, log: log, clk: clk}
}

type CreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address"`
	Phone    int64  `json:"phone"`
	BForm    int64  `json:"bform"`
}

// Create registers a subscriber and stamps the trial window. The trial is
// applied here only; updates never re-apply it.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*models.Subscriber, error) {
	hashed, err := hash.Password(req.Password)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	trialDays := s.cfg.Trial.Days
	expiry := now.AddDate(0, 0, trialDays)

	sub := &models.Subscriber{
		Name:               req.Name,
		Email:              req.Email,
		Password:           hashed,
		Address:            req.Address,
		Phone:              req.Phone,
		BForm:              req.BForm,
		JoinDate:           now,
		Trial:              types.TrialFlagYes,
		TrialDays:          trialDays,
		SubscriptionExpiry: &expiry,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Subscriber{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if count > 0 {
			return ErrEmailTaken
		}
		if err := tx.Create(sub).Error; err != nil {
			return fmt.Errorf("failed to create subscriber: %w", err)
		}
		countdown := &models.TrialCountdown{
			SubscriberID:  sub.ID,
			TrialDuration: trialDays,
			DaysLeft:      trialDays,
			LastChecked:   now,
		}
		if err := tx.Create(countdown).Error; err != nil {
			return fmt.Errorf("failed to create trial countdown: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.writeEntitlementLog(ctx, sub.ID, types.EntitlementChangeReasonTrialStart, nil, sub)
	return sub, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Subscriber, error) {
	var sub models.Subscriber
	if err := s.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load subscriber: %w", err)
	}
	return &sub, nil
}

func (s *Service) List(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	if req == nil {
		req = &ListRequest{}
	}
	if req.Size <= 0 {
		req.Size = 50
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.Subscriber{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count subscribers: %w", err)
	}

	var rows []*models.Subscriber
	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return &ListResponse{Items: rows, Total: total}, nil
}

type ListRequest struct {
	Filters []*types.CommonFilter `json:"filters"`
	From    int                   `json:"from"`
	Size    int                   `json:"size"`
}

type ListResponse struct {
	Items []*models.Subscriber `json:"items"`
	Total int64                `json:"total"`
}

// filtersAnd combines CommonFilters into a single clause.Expression.
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

type UpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Address  *string `json:"address"`
	Phone    *int64  `json:"phone"`
	BForm    *int64  `json:"bform"`
}

// Update applies a partial field update. An incoming password is hashed and
// the persisted column set is widened to include the hash output, so the
// hash never computes without being written. Trial fields are never touched.
func (s *Service) Update(ctx context.Context, id uint, req *UpdateRequest) (*models.Subscriber, error) {
	sub, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil && *req.Email != sub.Email {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Subscriber{}).
			Where("email = ? AND id <> ?", *req.Email, id).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := hash.Password(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.BForm != nil {
		updates["bform"] = *req.BForm
	}
	if len(updates) == 0 {
		return sub, nil
	}

	if err := s.db.WithContext(ctx).Model(sub).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update subscriber: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes the subscriber; child rows (assignments, payments, revenue,
// messages, histories) go with it via FK cascade.
func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Subscriber{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete subscriber: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DaysRemaining evaluates the entitlement countdown at the injected clock's now.
func (s *Service) DaysRemaining(sub *models.Subscriber) int {
	return sub.DaysRemaining(s.clk.Now())
}

// writeEntitlementLog persists an audit row asynchronously; failures are
// logged, never returned.
func (s *Service) writeEntitlementLog(ctx context.Context, subscriberID uint, reason types.EntitlementChangeReason, before, after interface{}) {
	go func() {
		entry := &models.EntitlementLog{
			ID:           tool.GenerateUUIDV7(),
			SubscriberID: subscriberID,
			Reason:       reason,
			Before:       marshalLog(before),
			After:        marshalLog(after),
		}
		if err := s.db.Save(entry).Error; err != nil {
			logctx.FromCtx(ctx, s.log).Errorf("failed to save entitlement log: %v", err)
		}
	}()
}

func marshalLog(v interface{}) datatypes.JSON {
	if v == nil {
		return datatypes.JSON("null")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}
