package workers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"spellbee/bot"
	"spellbee/models"

	"github.com/jinzhu/gorm"
)

/************************************************
/**** MARK: DISPATCH TUNING ****/
/************************************************/
const DISPATCH_LOOKAHEAD = 5 * time.Minute
const DISPATCH_BATCH_SIZE = 20
const DISPATCH_COOLDOWN = 2 * time.Second

// ReminderStore is the narrow persistence surface the dispatcher needs.
// The application database implements it via GormReminderStore; tests
// inject doubles.
type ReminderStore interface {
	// DueReminders returns active, unattended reminders scheduled up to
	// horizon whose attempt budget is not exhausted, in scan order
	// (scheduled_at asc, id asc).
	DueReminders(horizon time.Time) ([]models.Reminder, error)
	// RecordAttempt increments the attempt counter and stamps the attempt
	// time. It runs before the send so a crash mid-send still consumed an
	// attempt.
	RecordAttempt(id int64, at time.Time) error
	// MarkAttended flips the delivered flag after a confirmed send.
	MarkAttended(id int64) error
}

// GormReminderStore implements ReminderStore on the application database.
type GormReminderStore struct {
	DB *gorm.DB
}

func (s GormReminderStore) DueReminders(horizon time.Time) ([]models.Reminder, error) {
	var out []models.Reminder
	err := s.DB.
		Where("scheduled_at <= ?", horizon).
		Where("is_active = ?", true).
		Where("is_attended = ?", false).
		Where("attempt_count <= max_attempts").
		Order("scheduled_at asc, id asc").
		Find(&out).Error
	return out, err
}

func (s GormReminderStore) RecordAttempt(id int64, at time.Time) error {
	return s.DB.Model(&models.Reminder{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"attempt_count":   gorm.Expr("attempt_count + 1"),
			"last_attempt_at": &at,
		}).Error
}

func (s GormReminderStore) MarkAttended(id int64) error {
	return s.DB.Model(&models.Reminder{}).
		Where("id = ?", id).
		Update("is_attended", true).Error
}

// Dispatcher delivers due reminders in rate-limited batches: recipients are
// grouped, split into batches of DISPATCH_BATCH_SIZE, batches run strictly
// one after another with a cooldown between them, and inside a batch every
// recipient is handled concurrently. Nothing guards two overlapping cycles
// against double-processing the same due set, so trigger cycles far apart
// relative to how long one takes.
type Dispatcher struct {
	Store  ReminderStore
	Sender bot.Sender

	// Now and Sleep default to the real clock; tests override them.
	Now   func() time.Time
	Sleep func(time.Duration)
}

type recipientGroup struct {
	recipient string
	reminders []models.Reminder
}

// RunCycle processes the currently-due set once and returns when every
// batch has settled. Failures are isolated per recipient: one broken send
// or one failed bookkeeping write never stops the rest of the cycle.
func (d *Dispatcher) RunCycle(ctx context.Context) {
	now := d.now()

	due, err := d.Store.DueReminders(now.Add(DISPATCH_LOOKAHEAD))
	if err != nil {
		log.Printf("reminders worker: due query error: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	groups := groupByRecipient(due)
	log.Printf("reminders worker: %d due reminders for %d recipients", len(due), len(groups))

	for start := 0; start < len(groups); start += DISPATCH_BATCH_SIZE {
		if start > 0 {
			d.sleep(DISPATCH_COOLDOWN)
		}

		end := start + DISPATCH_BATCH_SIZE
		if end > len(groups) {
			end = len(groups)
		}

		var wg sync.WaitGroup
		for _, group := range groups[start:end] {
			wg.Add(1)
			go func(g recipientGroup) {
				defer wg.Done()
				d.deliver(ctx, g, now)
			}(group)
		}
		wg.Wait()
	}
}

// deliver handles one recipient: attempt bookkeeping first so the attempt
// is durable whether or not the send succeeds, then the combined send, then
// the attended flag, which flips only after a confirmed delivery.
func (d *Dispatcher) deliver(ctx context.Context, g recipientGroup, now time.Time) {
	for _, rem := range g.reminders {
		if err := d.Store.RecordAttempt(rem.ID, now); err != nil {
			log.Printf("reminders worker: attempt bookkeeping failed for reminder %d: %v", rem.ID, err)
			return
		}
	}

	chatID, err := strconv.ParseInt(g.recipient, 10, 64)
	if err != nil {
		log.Printf("reminders worker: bad recipient id %q: %v", g.recipient, err)
		return
	}

	if err := d.Sender.Send(ctx, chatID, combinedMessage(g.reminders), nil); err != nil {
		log.Printf("reminders worker: send to %s failed: %v", g.recipient, err)
		return
	}

	for _, rem := range g.reminders {
		if err := d.Store.MarkAttended(rem.ID); err != nil {
			log.Printf("reminders worker: attended flag failed for reminder %d: %v", rem.ID, err)
		}
	}
}

// groupByRecipient folds the due set into per-recipient groups, keeping the
// first-appearance order of the scan so batch order is deterministic.
func groupByRecipient(due []models.Reminder) []recipientGroup {
	index := make(map[string]int, len(due))
	groups := make([]recipientGroup, 0, len(due))

	for _, rem := range due {
		i, ok := index[rem.RecipientID]
		if !ok {
			i = len(groups)
			index[rem.RecipientID] = i
			groups = append(groups, recipientGroup{recipient: rem.RecipientID})
		}
		groups[i].reminders = append(groups[i].reminders, rem)
	}
	return groups
}

// combinedMessage renders one outbound text for all of a recipient's due
// reminders.
func combinedMessage(reminders []models.Reminder) string {
	if len(reminders) == 1 {
		return "⏰ Reminder: " + reminders[0].Message
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⏰ You have %d reminders:\n", len(reminders))
	for i, rem := range reminders {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rem.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *Dispatcher) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *Dispatcher) sleep(dur time.Duration) {
	if d.Sleep != nil {
		d.Sleep(dur)
		return
	}
	time.Sleep(dur)
}

// StartReminderDispatcher starts a loop that runs a dispatch cycle on a
// fixed interval.
func StartReminderDispatcher(db *gorm.DB, sender bot.Sender, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			RunDispatchCycle(db, sender)
		}
	}()
}

// RunDispatchCycle runs one cycle against the application database. The
// dispatch trigger endpoint uses it for on-demand runs.
func RunDispatchCycle(db *gorm.DB, sender bot.Sender) {
	d := &Dispatcher{Store: GormReminderStore{DB: db}, Sender: sender}
	d.RunCycle(context.Background())
}
