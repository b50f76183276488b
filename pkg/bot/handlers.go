package bot

import (
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Dima111000/shedule-zsm-1/pkg/schedule"
	"github.com/Dima111000/shedule-zsm-1/pkg/scraper"
)

const helpText = `Commands:
/setgroup — change your group
/bells — bell schedule
/schedule — pick a day
/today — today's lessons
/current — what's on now
/profile — your group
/help — this message`

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		if _, ok := b.sessions.Group(chatID); ok {
			b.send(chatID, "Group already selected. Use /bells, /schedule, /today, /current, /profile, /help")
			return
		}
		b.sendGroupPicker(chatID, "Welcome! Pick your group:")

	case "help", "commands":
		b.send(chatID, helpText)

	case "profile":
		if url, ok := b.sessions.Group(chatID); ok {
			b.send(chatID, url)
		} else {
			b.send(chatID, "No group selected yet. Use /setgroup")
		}

	case "setgroup":
		b.sendGroupPicker(chatID, "Pick your group:")

	case "bells":
		if _, ok := b.sessions.Group(chatID); !ok {
			b.send(chatID, "Pick a group first: /setgroup")
			return
		}
		b.send(chatID, renderBells())

	case "schedule":
		if _, ok := b.sessions.Group(chatID); !ok {
			b.send(chatID, "Pick a group first: /setgroup")
			return
		}
		reply := tgbotapi.NewMessage(chatID, "Pick a day:")
		reply.ReplyMarkup = dayKeyboard()
		b.sendMessage(reply)

	case "today":
		b.withTimetable(chatID, func(tt *scraper.Timetable) string {
			return renderAnswer(b.engine.LessonsForToday(tt))
		})

	case "current":
		b.withTimetable(chatID, func(tt *scraper.Timetable) string {
			return renderCurrent(b.engine.CurrentLesson(tt))
		})
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	defer func() {
		if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			b.log.Warn("failed to answer callback", zap.Error(err))
		}
	}()

	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	parts := strings.SplitN(cb.Data, "|", 2)
	if len(parts) != 2 {
		return
	}
	arg, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}

	switch parts[0] {
	case "pg":
		groups, ferr := b.dir.Groups()
		if ferr != nil {
			b.send(chatID, errorText(ferr))
			return
		}
		edit := tgbotapi.NewEditMessageReplyMarkup(chatID, cb.Message.MessageID,
			groupKeyboard(groups, arg, b.cfg.PageSize))
		if _, err := b.api.Request(edit); err != nil {
			b.log.Warn("failed to flip group page", zap.Error(err))
		}

	case "set":
		groups, ferr := b.dir.Groups()
		if ferr != nil {
			b.send(chatID, errorText(ferr))
			return
		}
		if arg < 0 || arg >= len(groups) {
			// The cache was replaced between pagination and selection.
			b.send(chatID, "That list is out of date, pick again: /setgroup")
			return
		}
		b.sessions.SetGroup(chatID, groups[arg].URL)
		b.send(chatID, "✅ Group set: "+groups[arg].Title)

	case "day":
		b.withTimetable(chatID, func(tt *scraper.Timetable) string {
			return renderAnswer(schedule.LessonsForDay(tt, arg))
		})
	}
}

// sendGroupPicker sends page zero of the group keyboard. An empty group
// list is answered, not treated as a failure, but it is worth a warning:
// it can mean the index page lost its navigation menu.
func (b *Bot) sendGroupPicker(chatID int64, text string) {
	groups, err := b.dir.Groups()
	if err != nil {
		b.send(chatID, errorText(err))
		return
	}
	if len(groups) == 0 {
		b.log.Warn("group list is empty; index page may have changed")
		b.send(chatID, "No groups found right now. Try again later.")
		return
	}

	reply := tgbotapi.NewMessage(chatID, text)
	reply.ReplyMarkup = groupKeyboard(groups, 0, b.cfg.PageSize)
	b.sendMessage(reply)
}

// withTimetable fetches the chat's selected timetable and sends whatever
// render produces from it. Fetch and parse failures become user-facing
// text here; they are never dropped.
func (b *Bot) withTimetable(chatID int64, render func(*scraper.Timetable) string) {
	url, ok := b.sessions.Group(chatID)
	if !ok {
		b.send(chatID, "Pick a group first: /setgroup")
		return
	}

	tt, err := b.client.FetchTimetable(url)
	if err != nil {
		b.log.Warn("timetable fetch failed", zap.String("url", url), zap.Error(err))
		b.send(chatID, errorText(err))
		return
	}

	b.send(chatID, render(tt))
}

func errorText(err error) string {
	if errors.Is(err, scraper.ErrTableNotFound) {
		return err.Error()
	}
	var fe *scraper.FetchError
	if errors.As(err, &fe) {
		return "Couldn't reach the schedule server. Please try again."
	}
	return "Something went wrong. Please try again."
}

func (b *Bot) send(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Warn("failed to send message", zap.Int64("chat_id", msg.ChatID), zap.Error(err))
	}
}
