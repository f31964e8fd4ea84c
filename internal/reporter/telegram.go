package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramReporter sends run summaries to the operator's chat. Entirely
// optional: crawls run fine without a token, and a failed send is never
// fatal to a run.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendSummary reports how a crawl run ended, including an early abort.
func (t *TelegramReporter) SendSummary(board string, collected, saved int, runErr error) error {
	text := fmt.Sprintf("✅ <b>%s crawl finished</b>\n📦 Collected: %d\n💾 Saved: %d", board, collected, saved)
	if runErr != nil {
		text = fmt.Sprintf("%s\n⚠️ Run ended early: %v", text, runErr)
	}
	return t.SendMessage(text)
}
