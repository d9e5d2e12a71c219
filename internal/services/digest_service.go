package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/repositories"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

// PendingDigestService emails the ops address a daily summary of
// booking requests still awaiting an admin decision.
type PendingDigestService struct {
	bookingRepo repositories.BookingRepository
	propRepo    repositories.PropertyRepository
	notifier    *NotificationService
}

func NewPendingDigestService(
	bookingRepo repositories.BookingRepository,
	propRepo repositories.PropertyRepository,
	notifier *NotificationService,
) *PendingDigestService {
	return &PendingDigestService{
		bookingRepo: bookingRepo,
		propRepo:    propRepo,
		notifier:    notifier,
	}
}

func (s *PendingDigestService) RunPendingDigest(ctx context.Context) error {
	pending, err := s.bookingRepo.ListByStatus(ctx, models.BookingStatusPending)
	if err != nil {
		return fmt.Errorf("list pending bookings: %w", err)
	}
	if len(pending) == 0 {
		utils.Logger.Debug("Pending digest: nothing awaiting review")
		return nil
	}

	titles := map[string]string{}
	var body strings.Builder
	fmt.Fprintf(&body, "%d booking request(s) awaiting review:\n", len(pending))
	for _, b := range pending {
		title, ok := titles[b.PropertyID]
		if !ok {
			prop, err := s.propRepo.GetByID(ctx, b.PropertyID)
			if err != nil {
				return err
			}
			title = propertyTitleOf(prop)
			titles[b.PropertyID] = title
		}
		fmt.Fprintf(&body, "\n- %s | %s to %s | %d guests | %s",
			title,
			b.StartDate.Format(time.DateOnly), b.EndDate.Format(time.DateOnly),
			b.GuestCount, b.CustomerName,
		)
	}

	subject := fmt.Sprintf("Pending bookings digest: %d awaiting review", len(pending))
	s.notifier.SendOpsEmail(subject, body.String())
	return nil
}
