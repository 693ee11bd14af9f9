package update

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"zulaflow/internal/scheduler"
	"zulaflow/internal/store"
	"zulaflow/internal/suggest"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewFasting   View = "Fasting"
	ViewStats     View = "Stats"
	ViewHistory   View = "History"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Fasting   string
	Stats     string
	History   string
	Help      string
	Quit      string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

// Model is the single bubbletea model. All document access goes through the
// store; the model itself only holds UI state.
type Model struct {
	Store   *store.Store
	Engine  *scheduler.Engine
	Suggest *suggest.Client

	CurrentView View
	// ViewDate is the browsed calendar date. Empty means today (the live,
	// writable surface); any other date renders its frozen day log.
	ViewDate       string
	SelectedTaskID string
	Cursor         int

	Palette       CommandPaletteState
	HelpVisible   bool
	Status        StatusBar
	Keys          GlobalKeyMap
	Notifications []Notification
	Suggestions   []suggest.Stub
	Quitting      bool
	LastError     error

	TimerTaskID string
	TimerEndsAt time.Time

	quickAddInput  textinput.Model
	commandInput   textinput.Model
	fastProgress   progress.Model
	suggestSpinner spinner.Model
	quickAddActive bool
	suggestPending bool
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type TickMsg struct {
	At time.Time
}

type SchedulerEventMsg struct {
	Event scheduler.Event
}

type SuggestPlanMsg struct {
	Stubs []suggest.Stub
	Err   error
}

func NewModel(st *store.Store, engine *scheduler.Engine, client *suggest.Client) Model {
	m := Model{
		Store:       st,
		Engine:      engine,
		Suggest:     client,
		CurrentView: ViewDashboard,
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Fasting:   "2",
			Stats:     "3",
			History:   "4",
			Help:      "?",
			Quit:      "q",
		},
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.fastProgress = progress.New(progress.WithDefaultGradient())

	m.suggestSpinner = spinner.New()
	m.suggestSpinner.Spinner = spinner.Dot
}

func isKnownView(v View) bool {
	switch v {
	case ViewDashboard, ViewFasting, ViewStats, ViewHistory:
		return true
	default:
		return false
	}
}

func (m *Model) notify(title, body, level string) {
	if body == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.Store.Now().UTC(),
	})
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
}
