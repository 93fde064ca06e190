package subscriber

import (
	"context"
	"fmt"

	"github.com/pslmedia/backoffice/internal/models"
	"github.com/pslmedia/backoffice/internal/platform/mail"
	"github.com/pslmedia/backoffice/pkg/logctx"
	"github.com/pslmedia/backoffice/pkg/types"
)

// SweepResult summarizes one trial maintenance pass.
type SweepResult struct {
	Checked int `json:"checked"`
	Expired int `json:"expired"`
	Alerted int `json:"alerted"`
}

// RunTrialSweep advances every trial countdown by the whole days elapsed
// since its last check and sends the expiry alert for countdowns that reach
// zero. AlertSent makes the alert fire at most once per subscriber, so
// re-running the sweep after expiry never resends. Alert delivery failures
// are suppressed.
func (s *Service) RunTrialSweep(ctx context.Context, mailer mail.Mailer) (*SweepResult, error) {
	now := s.clk.Now()
	var countdowns []*models.TrialCountdown
	if err := s.db.WithContext(ctx).
		Preload("Subscriber").
		Find(&countdowns).Error; err != nil {
		return nil, fmt.Errorf("failed to load trial countdowns: %w", err)
	}

	res := &SweepResult{Checked: len(countdowns)}
	log := logctx.FromCtx(ctx, s.log)

	for _, cd := range countdowns {
		elapsed := cd.ElapsedWholeDays(now)
		if elapsed > 0 {
			cd.DaysLeft -= elapsed
			cd.LastChecked = now
			if err := s.db.WithContext(ctx).Model(cd).Updates(map[string]interface{}{
				"days_left":    cd.DaysLeft,
				"last_checked": cd.LastChecked,
			}).Error; err != nil {
				log.Errorw("trial countdown update failed", "subscriber_id", cd.SubscriberID, "err", err)
				continue
			}
		}

		if cd.DaysLeft > 0 {
			continue
		}
		res.Expired++
		if cd.AlertSent || cd.Subscriber == nil {
			continue
		}

		body := fmt.Sprintf("Dear %s, your trial period has ended.", cd.Subscriber.Name)
		if err := mailer.Send(ctx, cd.Subscriber.Email, "Trial Ended", body); err != nil {
			// Fire-and-forget: leave AlertSent unset so the next pass retries.
			log.Warnw("trial alert send failed", "subscriber_id", cd.SubscriberID, "err", err)
			continue
		}
		if err := s.db.WithContext(ctx).Model(cd).Update("alert_sent", true).Error; err != nil {
			log.Errorw("trial alert flag update failed", "subscriber_id", cd.SubscriberID, "err", err)
			continue
		}
		res.Alerted++
		s.writeEntitlementLog(ctx, cd.SubscriberID, types.EntitlementChangeReasonTrialExpired, nil, cd)
	}
	return res, nil
}
