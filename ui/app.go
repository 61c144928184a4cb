package ui

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"oboegaki/model"
	"oboegaki/runner"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

type EntryStore interface {
	Load() ([]model.Entry, error)
	Save(entries []model.Entry) error
}

type Clipboard interface {
	WriteAll(text string) error
}

type History interface {
	Record(entry model.Entry, action model.Action, exitCode int) (int64, error)
	LastUsed() (map[string]time.Time, error)
}

type Options struct {
	Store     EntryStore
	Clipboard Clipboard
	History   History // optional
	Shell     bool
}

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeAdd
	modeDelete
	modeParam
)

// item is an entry with its position in the full stored list.
type item struct {
	index int
	entry model.Entry
}

var errStoreChanged = errors.New("commands changed on disk, list reloaded")

type App struct {
	opts     Options
	items    []item
	filtered []item

	// UI state
	mode   mode
	cursor int
	width  int
	height int
	err    string
	status string

	// Search
	searchInput textinput.Model

	// Output
	output      viewport.Model
	outputLines []string
	running     bool
	runningItem *item
	outputChan  chan runner.OutputMsg

	// Add form
	formInputs []textinput.Model
	formFocus  int

	// Param input
	paramNames  []string
	paramValues map[string]string
	paramIndex  int
	paramInput  textinput.Model
	pendingItem *item
}

func NewApp(opts Options) (*App, error) {
	search := textinput.New()
	search.Placeholder = "/ to search commands..."
	search.Prompt = "/ "

	app := &App{
		opts:        opts,
		searchInput: search,
		output:      viewport.New(80, 10),
		paramValues: make(map[string]string),
	}

	if err := app.reload(); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *App) Init() tea.Cmd {
	return nil
}

type outputMsg runner.OutputMsg

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width - 4  // account for app padding
		a.height = msg.Height - 2 // account for app padding
		a.output.Width = a.width - 4
		a.output.Height = a.height / 3
		return a, nil

	case outputMsg:
		if msg.Done {
			a.finishRun(runner.OutputMsg(msg))
			return a, nil
		}
		line := msg.Line
		if msg.IsErr {
			line = errorStyle.Render(line)
		}
		a.outputLines = append(a.outputLines, line)
		a.output.SetContent(strings.Join(a.outputLines, "\n"))
		a.output.GotoBottom()
		return a, waitForOutput(a.outputChan)

	case tea.KeyMsg:
		a.err = ""
		a.status = ""

		switch a.mode {
		case modeNormal:
			return a.updateNormal(msg)
		case modeSearch:
			return a.updateSearch(msg)
		case modeAdd:
			return a.updateForm(msg)
		case modeDelete:
			return a.updateDelete(msg)
		case modeParam:
			return a.updateParam(msg)
		}
	}

	return a, nil
}

func (a *App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}

	case "down", "j":
		if a.cursor < len(a.filtered)-1 {
			a.cursor++
		}

	case "enter":
		if len(a.filtered) > 0 && !a.running {
			return a.runSelected()
		}

	case "c":
		if len(a.filtered) > 0 {
			a.copySelected()
		}

	case "a":
		a.mode = modeAdd
		a.initForm()
		return a, nil

	case "d":
		if len(a.filtered) > 0 {
			a.mode = modeDelete
		}
		return a, nil

	case "/":
		a.mode = modeSearch
		return a, a.searchInput.Focus()

	case "esc":
		a.searchInput.SetValue("")
		a.filterEntries()
	}

	return a, nil
}

func (a *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.searchInput.SetValue("")
		a.filterEntries()
		a.searchInput.Blur()
		a.mode = modeNormal
		return a, nil

	case "enter", "down":
		a.searchInput.Blur()
		a.mode = modeNormal
		return a, nil

	default:
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		a.filterEntries()
		return a, cmd
	}
}

func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.mode = modeNormal
		return a, nil

	case "tab", "down":
		a.formFocus = (a.formFocus + 1) % len(a.formInputs)
		return a, a.focusFormInput()

	case "shift+tab", "up":
		a.formFocus--
		if a.formFocus < 0 {
			a.formFocus = len(a.formInputs) - 1
		}
		return a, a.focusFormInput()

	case "enter":
		return a.submitForm()

	default:
		var cmd tea.Cmd
		a.formInputs[a.formFocus], cmd = a.formInputs[a.formFocus].Update(msg)
		return a, cmd
	}
}

func (a *App) updateDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if len(a.filtered) > 0 {
			if err := a.deleteSelected(); err != nil {
				a.err = err.Error()
			} else {
				a.status = "Deleted!"
			}
		}
		a.mode = modeNormal
		return a, nil

	case "n", "N", "esc":
		a.mode = modeNormal
		return a, nil
	}

	return a, nil
}

func (a *App) updateParam(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.mode = modeNormal
		a.pendingItem = nil
		return a, nil

	case "enter":
		a.paramValues[a.paramNames[a.paramIndex]] = a.paramInput.Value()
		a.paramIndex++

		if a.paramIndex >= len(a.paramNames) {
			return a.execute()
		}

		a.paramInput.SetValue("")
		a.paramInput.Placeholder = a.paramNames[a.paramIndex]
		return a, nil

	default:
		var cmd tea.Cmd
		a.paramInput, cmd = a.paramInput.Update(msg)
		return a, cmd
	}
}

func (a *App) selected() item {
	return a.filtered[a.cursor]
}

func (a *App) runSelected() (tea.Model, tea.Cmd) {
	it := a.selected()
	params := runner.ExtractParams(it.entry.Command)

	a.pendingItem = &it
	a.paramValues = make(map[string]string)

	if len(params) > 0 {
		a.mode = modeParam
		a.paramNames = params
		a.paramIndex = 0
		a.paramInput = textinput.New()
		a.paramInput.Placeholder = params[0]
		a.paramInput.Focus()
		return a, nil
	}

	return a.execute()
}

func (a *App) execute() (tea.Model, tea.Cmd) {
	it := a.pendingItem
	a.pendingItem = nil
	a.mode = modeNormal

	text := runner.SubstituteParams(it.entry.Command, a.paramValues)
	argv := runner.Argv(text, a.opts.Shell)
	if len(argv) == 0 {
		a.err = "Command is empty"
		return a, nil
	}

	a.running = true
	a.runningItem = it
	a.outputLines = []string{cmdPreviewStyle.Render("$ " + text), ""}
	a.output.SetContent(strings.Join(a.outputLines, "\n"))

	a.outputChan = make(chan runner.OutputMsg)
	go runner.Stream(argv, a.outputChan)

	return a, waitForOutput(a.outputChan)
}

func (a *App) finishRun(msg runner.OutputMsg) {
	a.running = false
	a.outputChan = nil
	if msg.ErrMsg != "" {
		a.outputLines = append(a.outputLines, errorStyle.Render("Error: "+msg.ErrMsg))
	}
	a.output.SetContent(strings.Join(a.outputLines, "\n"))
	a.output.GotoBottom()

	// A negative code without a process means it never started.
	if a.runningItem != nil && msg.ExitCode >= 0 {
		a.recordUse(a.runningItem.entry, model.ActionRun, msg.ExitCode)
	}
	a.runningItem = nil
}

func waitForOutput(ch chan runner.OutputMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return outputMsg{Done: true}
		}
		return outputMsg(msg)
	}
}

func (a *App) copySelected() {
	it := a.selected()
	if a.opts.Clipboard == nil {
		a.err = "Clipboard unavailable"
		return
	}
	if err := a.opts.Clipboard.WriteAll(it.entry.Command); err != nil {
		a.err = err.Error()
		return
	}
	a.recordUse(it.entry, model.ActionCopy, 0)
	a.status = "Copied!"
}

// deleteSelected removes the selected entry by its stored position, after
// checking that position still holds the same entry.
func (a *App) deleteSelected() error {
	it := a.selected()

	entries, err := a.opts.Store.Load()
	if err != nil {
		return err
	}
	if current, ok := model.At(entries, it.index); !ok || current != it.entry {
		if err := a.reload(); err != nil {
			return err
		}
		return errStoreChanged
	}

	remaining, _, _ := model.Remove(entries, it.index)
	if err := a.opts.Store.Save(remaining); err != nil {
		return err
	}
	if err := a.reload(); err != nil {
		return err
	}
	if a.cursor >= len(a.filtered) && a.cursor > 0 {
		a.cursor--
	}
	return nil
}

func (a *App) recordUse(entry model.Entry, action model.Action, exitCode int) {
	if a.opts.History == nil {
		return
	}
	if _, err := a.opts.History.Record(entry, action, exitCode); err != nil {
		a.err = "history: " + err.Error()
	}
}

func (a *App) initForm() {
	a.formInputs = make([]textinput.Model, 3)

	cmdInput := textinput.New()
	cmdInput.Placeholder = "Command (use {{param}} for dynamic values)"
	cmdInput.Focus()

	categoryInput := textinput.New()
	categoryInput.Placeholder = "Category (e.g., git)"

	noteInput := textinput.New()
	noteInput.Placeholder = "Note (optional)"

	a.formInputs[0] = cmdInput
	a.formInputs[1] = categoryInput
	a.formInputs[2] = noteInput
	a.formFocus = 0
}

func (a *App) focusFormInput() tea.Cmd {
	for i := range a.formInputs {
		a.formInputs[i].Blur()
	}
	return a.formInputs[a.formFocus].Focus()
}

func (a *App) submitForm() (tea.Model, tea.Cmd) {
	entry := model.Entry{
		Command:  strings.TrimSpace(a.formInputs[0].Value()),
		Category: strings.TrimSpace(a.formInputs[1].Value()),
		Note:     strings.TrimSpace(a.formInputs[2].Value()),
	}

	if entry.Command == "" {
		a.err = "Command is required"
		return a, nil
	}

	entries, err := a.opts.Store.Load()
	if err != nil {
		a.err = err.Error()
		return a, nil
	}
	if model.IndexOf(entries, entry.Command) > 0 {
		a.err = "A command with this exact text already exists"
		return a, nil
	}

	entries = append(entries, entry)
	if err := a.opts.Store.Save(entries); err != nil {
		a.err = err.Error()
		return a, nil
	}

	if err := a.reload(); err != nil {
		a.err = err.Error()
	} else {
		a.status = "Added!"
	}
	a.mode = modeNormal
	return a, nil
}

// reload reads the store and orders items by last use, most recent first,
// then by position for items never used.
func (a *App) reload() error {
	entries, err := a.opts.Store.Load()
	if err != nil {
		return err
	}

	var used map[string]time.Time
	if a.opts.History != nil {
		used, err = a.opts.History.LastUsed()
		if err != nil {
			a.err = "history: " + err.Error()
			used = nil
		}
	}

	items := make([]item, len(entries))
	for i, e := range entries {
		items[i] = item{index: i + 1, entry: e}
	}
	sort.SliceStable(items, func(i, j int) bool {
		ti, iok := used[items[i].entry.Command]
		tj, jok := used[items[j].entry.Command]
		if iok != jok {
			return iok
		}
		return ti.After(tj)
	})

	a.items = items
	a.filterEntries()
	return nil
}

func (a *App) filterEntries() {
	query := a.searchInput.Value()
	if query == "" {
		a.filtered = a.items
	} else {
		targets := make([]string, len(a.items))
		for i, it := range a.items {
			targets[i] = it.entry.Category + " " + it.entry.Command + " " + it.entry.Note
		}

		matches := fuzzy.Find(query, targets)
		a.filtered = make([]item, len(matches))
		for i, m := range matches {
			a.filtered[i] = a.items[m.Index]
		}
	}

	if a.cursor >= len(a.filtered) {
		a.cursor = max(0, len(a.filtered)-1)
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("oboegaki"))
	b.WriteString("\n\n")

	b.WriteString(a.searchInput.View())
	b.WriteString("\n\n")

	listHeight := a.height - a.output.Height - 10
	if listHeight < 3 {
		listHeight = 3
	}

	if a.mode == modeAdd {
		b.WriteString(a.renderForm())
	} else {
		b.WriteString(a.renderList(listHeight))
	}

	if a.mode == modeDelete && len(a.filtered) > 0 {
		it := a.selected()
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(fmt.Sprintf("Delete #%d '%s'? (y/n)", it.index, it.entry.Command)))
		b.WriteString("\n")
	}

	if a.mode == modeParam {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("Enter value for {{%s}}: ", a.paramNames[a.paramIndex])))
		b.WriteString(a.paramInput.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(outputTitleStyle.Render("OUTPUT"))
	b.WriteString("\n")
	b.WriteString(borderStyle.Width(a.width - 4).Render(a.output.View()))
	b.WriteString("\n")

	if a.err != "" {
		b.WriteString(errorStyle.Render("Error: " + a.err))
		b.WriteString("\n")
	}
	if a.status != "" {
		b.WriteString(successStyle.Render(a.status))
		b.WriteString("\n")
	}

	b.WriteString(a.renderHelp())

	return appStyle.Render(b.String())
}

func (a *App) renderList(height int) string {
	if len(a.filtered) == 0 {
		return mutedStyle.Render("No commands found. Press 'a' to add one.\n")
	}

	var lines []string
	start := 0
	if a.cursor >= height {
		start = a.cursor - height + 1
	}

	end := start + height
	if end > len(a.filtered) {
		end = len(a.filtered)
	}

	for i := start; i < end; i++ {
		it := a.filtered[i]
		prefix := "  "
		style := normalStyle
		if i == a.cursor {
			prefix = "▸ "
			style = selectedStyle
		}

		heading := fmt.Sprintf("%s%d  %s", prefix, it.index, it.entry.Command)
		detail := it.entry.Category
		if it.entry.Note != "" {
			if detail != "" {
				detail += " · "
			}
			detail += it.entry.Note
		}

		lines = append(lines, style.Render(truncate(heading, a.width-4)))
		if detail != "" {
			lines = append(lines, cmdPreviewStyle.Render("    "+truncate(detail, a.width-10)))
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

func (a *App) renderForm() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Add Command"))
	b.WriteString("\n\n")

	labels := []string{"Command", "Category", "Note"}
	for i, input := range a.formInputs {
		b.WriteString(labelStyle.Render(labels[i] + ": "))
		style := inputStyle
		if i == a.formFocus {
			style = focusedInputStyle
		}
		b.WriteString(style.Width(a.width - 20).Render(input.View()))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("tab: next field • enter: save • esc: cancel"))
	b.WriteString("\n")

	return b.String()
}

func (a *App) renderHelp() string {
	if a.mode != modeNormal {
		return ""
	}

	keys := []struct{ key, desc string }{
		{"enter", "run"},
		{"c", "copy"},
		{"/", "search"},
		{"a", "add"},
		{"d", "delete"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, helpKeyStyle.Render(k.key)+" "+helpStyle.Render(k.desc))
	}

	return strings.Join(parts, "  ")
}

func truncate(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
