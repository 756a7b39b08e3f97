package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"planforge-backend/models"
	"planforge-backend/wizard"
)

const (
	reminderType     = "incomplete_plan_reminder"
	reminderThrottle = 7 * 24 * time.Hour
)

// NotificationStore records sent emails for throttling.
type NotificationStore interface {
	Record(ctx context.Context, n *models.EmailNotification) error
	SentSince(ctx context.Context, userID uuid.UUID, notificationType string, cutoff time.Time) (bool, error)
}

// ReminderUserLister lists the accounts considered for reminders.
type ReminderUserLister interface {
	List(ctx context.Context) ([]*models.User, error)
}

// ReminderPlanLister loads a user's plans for progress inspection.
type ReminderPlanLister interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Plan, error)
}

// ReminderService emails users who started a plan but left it mostly
// empty. Sends are throttled to one per user per week.
type ReminderService struct {
	userRepo         ReminderUserLister
	planRepo         ReminderPlanLister
	notificationRepo NotificationStore
	notifier         Notifier
	now              func() time.Time
}

// ReminderServiceOption is a functional option for ReminderService
type ReminderServiceOption func(*ReminderService)

// ReminderWithClock sets the time source. Tests use a fixed clock.
func ReminderWithClock(now func() time.Time) ReminderServiceOption {
	return func(s *ReminderService) {
		s.now = now
	}
}

// NewReminderService creates a new reminder service
func NewReminderService(
	userRepo ReminderUserLister,
	planRepo ReminderPlanLister,
	notificationRepo NotificationStore,
	notifier Notifier,
	opts ...ReminderServiceOption,
) *ReminderService {
	s := &ReminderService{
		userRepo:         userRepo,
		planRepo:         planRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plans under this completion percentage count as abandoned.
const incompleteThreshold = 50

// SendRemindersResult reports how a reminder run went.
type SendRemindersResult struct {
	Considered int
	Sent       int
	Throttled  int
}

// SendReminders walks all users and emails those with an incomplete
// plan, unless a reminder already went out in the last seven days.
func (s *ReminderService) SendReminders(ctx context.Context) (*SendRemindersResult, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := &SendRemindersResult{}
	cutoff := s.now().Add(-reminderThrottle)

	for _, user := range users {
		plans, err := s.planRepo.ListByUserID(ctx, user.ID)
		if err != nil {
			log.Printf("Failed to load plans for %s: %v", user.ID, err)
			continue
		}

		var incomplete *models.Plan
		for _, plan := range plans {
			if wizard.Progress(&plan.PlanContent) < incompleteThreshold {
				incomplete = plan
				break
			}
		}
		if incomplete == nil {
			continue
		}
		result.Considered++

		sent, err := s.notificationRepo.SentSince(ctx, user.ID, reminderType, cutoff)
		if err != nil {
			log.Printf("Failed to check reminder history for %s: %v", user.ID, err)
			continue
		}
		if sent {
			result.Throttled++
			continue
		}

		message := fmt.Sprintf("Your business plan %q is waiting for you. Pick up where you left off and finish it.", incomplete.DisplayName())
		if err := s.notifier.Notify(user.Email, "Finish your business plan", message); err != nil {
			log.Printf("Failed to send reminder to %s: %v", user.Email, err)
			continue
		}
		if err := s.notificationRepo.Record(ctx, &models.EmailNotification{
			UserID:           user.ID,
			NotificationType: reminderType,
		}); err != nil {
			log.Printf("Failed to record reminder for %s: %v", user.ID, err)
		}
		result.Sent++
	}
	return result, nil
}
