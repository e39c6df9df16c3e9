// Package notifier sends daily streak reminders. A user links a Telegram
// chat once (settings key "telegram-chat-id"); an hourly job then pings
// every linked user whose streak would break without activity today.
package notifier

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/go-co-op/gocron"

	"github.com/ZhalgasKracavshik/smartspeak/internal/database"
	"github.com/ZhalgasKracavshik/smartspeak/internal/progress"
)

// Default window for sending reminders; configurable via environment.
const (
	DefaultStartHour = 9
	DefaultEndHour   = 21
)

// Deliverer sends one reminder message to a chat.
type Deliverer interface {
	SendReminder(chatID int64, text string) error
}

// TelegramDeliverer delivers reminders through the Bot API.
type TelegramDeliverer struct {
	bot *tgbotapi.BotAPI
}

// NewTelegramDeliverer creates a deliverer from TELEGRAM_BOT_TOKEN.
func NewTelegramDeliverer() (*TelegramDeliverer, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %v", err)
	}
	return &TelegramDeliverer{bot: bot}, nil
}

// SendReminder sends one message.
func (d *TelegramDeliverer) SendReminder(chatID int64, text string) error {
	_, err := d.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// Reminder runs the scheduled streak check.
type Reminder struct {
	scheduler *gocron.Scheduler
	deliverer Deliverer
	now       func() time.Time
}

// New creates a reminder job with the given deliverer.
func New(deliverer Deliverer) *Reminder {
	return &Reminder{
		scheduler: gocron.NewScheduler(time.UTC),
		deliverer: deliverer,
		now:       time.Now,
	}
}

// Start schedules the hourly at-risk check.
func (r *Reminder) Start() {
	r.scheduler.Every(1).Hour().Do(r.CheckAndSendReminders)
	r.scheduler.StartAsync()
}

// Stop terminates the scheduled job.
func (r *Reminder) Stop() {
	r.scheduler.Stop()
}

// CheckAndSendReminders pings every linked user whose streak is at risk
// today. Runs inside the configured hour window so nobody is woken at 3am.
func (r *Reminder) CheckAndSendReminders() {
	currentHour := r.now().Hour()

	startHour := envHour("NOTIFICATION_START_HOUR", DefaultStartHour)
	endHour := envHour("NOTIFICATION_END_HOUR", DefaultEndHour)
	if currentHour < startHour || currentHour > endHour {
		return
	}

	settingsRepo := database.NewSettingsRepository()
	progressRepo := database.NewProgressRepository()

	linked, err := settingsRepo.UsersWithSetting(database.TelegramChatKey)
	if err != nil {
		log.Printf("Error listing linked chats: %v", err)
		return
	}

	today := progress.Today(r.now())
	for userID, chatValue := range linked {
		chatID, err := strconv.ParseInt(chatValue, 10, 64)
		if err != nil {
			log.Printf("Bad chat id for user %s: %v", userID, err)
			continue
		}

		raw, found, err := progressRepo.Get(userID)
		if err != nil || !found {
			continue
		}
		p, err := progress.Upgrade(raw)
		if err != nil {
			log.Printf("Error decoding progress for user %s: %v", userID, err)
			continue
		}

		status := progress.CurrentStatus(p.StreakData, today)
		if !status.IsActive || status.DaysUntilBreak != 0 {
			continue // safe today, or already broken
		}

		text := fmt.Sprintf("%s\nВаш streak: %d 🔥 %s",
			status.Message, p.StreakData.CurrentStreak,
			progress.StreakMotivation(p.StreakData.CurrentStreak))
		if err := r.deliverer.SendReminder(chatID, text); err != nil {
			log.Printf("Error sending reminder to user %s: %v", userID, err)
		}
	}
}

func envHour(name string, fallback int) int {
	if s := os.Getenv(name); s != "" {
		if h, err := strconv.Atoi(s); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
