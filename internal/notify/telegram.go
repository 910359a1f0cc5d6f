package notify

import (
	"fmt"
	"html"
	"net/http"
	"time"

	"go-gigradar/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendTimeout bounds every Telegram API call. Without it a dead peer can
// hold a Deliver open for hours, and the poller's in-flight guard would
// keep every later cycle from starting.
const sendTimeout = 30 * time.Second

type TelegramNotifier struct {
	api *tgbotapi.BotAPI
}

func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, newHTTPClient())
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramNotifier{api: api}, nil
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: sendTimeout}
}

// Deliver sends one posting card to one chat.
func (t *TelegramNotifier) Deliver(job *model.JobPosting, recipient int64) error {
	msg := tgbotapi.NewMessage(recipient, cardText(job))
	msg.ParseMode = "HTML" //use HTML for bold/italic
	msg.DisableWebPagePreview = true
	_, err := t.api.Send(msg)
	return err
}

// cardText renders the posting card. Every feed-supplied field is escaped,
// the link included: it lands inside an href attribute.
func cardText(job *model.JobPosting) string {
	company := job.Company
	if company == "" {
		company = "N/A"
	}
	tags := job.Tags
	if tags == "" {
		tags = "N/A"
	}

	return fmt.Sprintf(
		"🔥 <b>%s</b>\n"+
			"🏢 %s\n"+
			"🏷 %s\n"+
			"⭐ Score: %.1f\n"+
			"🔖 Source: %s\n"+
			"🔗 <a href=\"%s\">View Job</a>",
		html.EscapeString(job.Title),
		html.EscapeString(company),
		html.EscapeString(tags),
		job.Score,
		html.EscapeString(job.Source),
		html.EscapeString(job.Link),
	)
}
