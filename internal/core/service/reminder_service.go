package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/peakform/fitness-api/internal/core/domain"
	"github.com/peakform/fitness-api/internal/core/ports"
)

const checkInBody = "Time for your daily fitness check-in. " +
	"Reply with: 1) did you work out today? 2) what meals did you have? 3) how are you feeling?"

// ReminderService keeps the daily check-in schedule and feeds due reminders
// into the delivery queue once a minute.
type ReminderService struct {
	queue  ports.JobQueue
	logger zerolog.Logger

	mu        sync.RWMutex
	reminders map[string]domain.Reminder
}

func NewReminderService(queue ports.JobQueue, logger zerolog.Logger) *ReminderService {
	return &ReminderService{
		queue:     queue,
		logger:    logger,
		reminders: make(map[string]domain.Reminder),
	}
}

// Schedule registers a daily check-in at checkInTime ("HH:MM", 24-hour).
func (s *ReminderService) Schedule(ctx context.Context, userID int64, phone, checkInTime string) (*domain.Reminder, error) {
	at, err := time.Parse("15:04", checkInTime)
	if err != nil {
		return nil, domain.ErrInvalidReminderTime
	}

	reminder := domain.Reminder{
		ID:     uuid.NewString(),
		UserID: userID,
		Phone:  phone,
		Hour:   at.Hour(),
		Minute: at.Minute(),
	}

	s.mu.Lock()
	s.reminders[reminder.ID] = reminder
	s.mu.Unlock()

	s.logger.Info().
		Str("reminder_id", reminder.ID).
		Int64("user_id", userID).
		Int("hour", reminder.Hour).
		Int("minute", reminder.Minute).
		Msg("check-in reminder scheduled")
	return &reminder, nil
}

// Run ticks once a minute and enqueues every reminder due at that wall-clock
// minute. Blocks until ctx is cancelled.
func (s *ReminderService) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.dispatchDue(now)
		}
	}
}

func (s *ReminderService) dispatchDue(now time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reminders {
		if r.Hour != now.Hour() || r.Minute != now.Minute() {
			continue
		}
		s.queue.Enqueue(ports.CheckInJob{
			ID:    uuid.NewString(),
			Phone: r.Phone,
			Body:  checkInBody,
		})
	}
}
