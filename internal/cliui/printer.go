// Package cliui renders calendar data and alerts for the terminal.
package cliui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/terraincognita07/moodlog/internal/calendar"
	"github.com/terraincognita07/moodlog/internal/client"
	"github.com/terraincognita07/moodlog/internal/i18n"
)

const maxCommentWidth = 60

var (
	heading   = color.New(color.Bold, color.Underline)
	alertHead = color.New(color.Bold, color.FgRed)
	selected  = color.New(color.FgYellow)
)

type Printer struct {
	out      io.Writer
	messages *i18n.Manager
	language string
}

// NewPrinter writes to out, or to color.Output when out is nil.
func NewPrinter(out io.Writer, messages *i18n.Manager, language string) *Printer {
	if out == nil {
		out = color.Output
	}
	return &Printer{out: out, messages: messages, language: messages.NormalizeLanguage(language)}
}

func (printer *Printer) T(key string, args ...any) string {
	if len(args) == 0 {
		return printer.messages.Translate(printer.language, key)
	}
	return printer.messages.Translatef(printer.language, key, args...)
}

func (printer *Printer) Println(key string, args ...any) {
	_, _ = fmt.Fprintln(printer.out, printer.T(key, args...))
}

// PrintEntries prints one row per entry. selectedDate, when present, is highlighted.
func (printer *Printer) PrintEntries(entries []client.CalendarEntry, selectedDate string) {
	if len(entries) == 0 {
		printer.Println("calendar.empty")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "
	tbl.MaxColWidth = maxCommentWidth
	tbl.AddRow(
		heading.Sprint(printer.T("table.date")),
		heading.Sprint(printer.T("table.emoji")),
		heading.Sprint(printer.T("table.comment")),
	)
	for _, entry := range entries {
		date := entry.Date
		if date == selectedDate {
			date = selected.Sprint("*" + date)
		}
		tbl.AddRow(date, entry.Emoji, strings.ReplaceAll(entry.Comment, "\n", " "))
	}
	_, _ = fmt.Fprintln(printer.out, tbl)
}

func (printer *Printer) PrintStats(stats client.EmotionStats) {
	_, _ = fmt.Fprintln(printer.out, printer.T("stats.total", stats.Total))
	if stats.TopEmoji != "" {
		_, _ = fmt.Fprintln(printer.out, printer.T("stats.top", stats.TopEmoji))
	}
	if len(stats.Counts) == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "
	tbl.AddRow(heading.Sprint(printer.T("table.emoji")), heading.Sprint(printer.T("table.count")))
	for _, count := range stats.Counts {
		tbl.AddRow(count.Emoji, count.Count)
	}
	_, _ = fmt.Fprintln(printer.out, tbl)
}

// Alert prints a calendar alert on one line: title, translated message and the
// server's own explanation in parentheses when it sent one.
func (printer *Printer) Alert(alert calendar.Alert) {
	title := printer.lookup(alert.Key+".title", alert.Title)
	message := printer.lookup(alert.Key+".message", alert.Message)
	if alert.Detail != "" {
		message += " (" + alert.Detail + ")"
	}
	_, _ = fmt.Fprintf(printer.out, "%s %s\n", alertHead.Sprint(title), message)
}

// AlertError prints a non-calendar failure under key, using the server message
// when one was sent.
func (printer *Printer) AlertError(key string, err error) {
	printer.Alert(calendar.Alert{
		Key:    key,
		Detail: client.UserMessage(err, ""),
		Err:    err,
	})
}

func (printer *Printer) lookup(key string, fallback string) string {
	if value, ok := printer.messages.Lookup(printer.language, key); ok {
		return value
	}
	if fallback != "" {
		return fallback
	}
	return key
}
