package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Dima111000/shedule-zsm-1/pkg/schedule"
	"github.com/Dima111000/shedule-zsm-1/pkg/scraper"
)

// Callback data shapes: "pg|<page>" flips the group picker page,
// "set|<index>" selects the group at that index in the cached order, and
// "day|<0..4>" asks for a weekday's lessons. Group selection goes by
// index because schedule URLs don't fit Telegram's callback data limit.

// groupKeyboard builds one page of the group picker. Pagination follows
// the cached insertion order; nav arrows appear only where there is a
// page to flip to.
func groupKeyboard(groups []scraper.Group, page, pageSize int) tgbotapi.InlineKeyboardMarkup {
	start := page * pageSize
	if start > len(groups) {
		start = len(groups)
	}
	end := start + pageSize
	if end > len(groups) {
		end = len(groups)
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for i := start; i < end; i++ {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(groups[i].Title, fmt.Sprintf("set|%d", i)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️", fmt.Sprintf("pg|%d", page-1)))
	}
	if end < len(groups) {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("▶️", fmt.Sprintf("pg|%d", page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(nav...))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// dayKeyboard offers the five school days, one per row.
func dayKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, day := range schedule.DayNames {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(day, fmt.Sprintf("day|%d", i)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
