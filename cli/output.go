package cli

import (
	"fmt"
	"io"
	"strings"

	"oboegaki/model"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	headerColor  = color.New(color.Bold)
)

type indexedEntry struct {
	Index int
	model.Entry
}

func indexAll(entries []model.Entry) []indexedEntry {
	rows := make([]indexedEntry, len(entries))
	for i, e := range entries {
		rows[i] = indexedEntry{Index: i + 1, Entry: e}
	}
	return rows
}

func printEntryTable(w io.Writer, rows []indexedEntry) {
	headerColor.Fprintf(w, "%-5s %-10s %-30s %-4s\n", "Index", "Category", "Command", "Note")
	fmt.Fprintf(w, "%s %s %s %s\n",
		strings.Repeat("-", 5), strings.Repeat("-", 10), strings.Repeat("-", 30), strings.Repeat("-", 4))
	for _, r := range rows {
		fmt.Fprintf(w, "%-5d %-10s %-30s %s\n", r.Index, r.Category, r.Command, r.Note)
	}
}
