package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"zulaflow/internal/clock"
	"zulaflow/internal/model"
	"zulaflow/internal/scheduler"
)

const (
	rolloverCheckID       = "rollover-check"
	rolloverCheckInterval = time.Minute
	taskTimerID           = "task-timer"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.Engine != nil {
		m.scheduleRolloverCheck(m.Store.Now())
		cmds = append(cmds, waitForEventCmd(m.Engine.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.suggestPending {
			var cmd tea.Cmd
			m.suggestSpinner, cmd = m.suggestSpinner.Update(typed)
			return m, cmd
		}
		return m, nil
	case TickMsg:
		// The per-second tick only redraws countdowns; date reconciliation
		// rides on the scheduler's rollover-check events.
		return m, tickCmd()
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case SchedulerEventMsg:
		return m.handleSchedulerEvent(typed.Event)
	case SuggestPlanMsg:
		return m.handleSuggestResult(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.quickAddActive {
		return m.handleQuickAddKey(msg)
	}

	switch msg.String() {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil
	case m.Keys.Dashboard:
		m.CurrentView = ViewDashboard
		m.ViewDate = ""
		return m, nil
	case m.Keys.Fasting:
		m.CurrentView = ViewFasting
		return m, nil
	case m.Keys.Stats:
		m.CurrentView = ViewStats
		return m, nil
	case m.Keys.History:
		m.CurrentView = ViewHistory
		if m.ViewDate == "" {
			m.ViewDate = m.Store.Today()
		}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.CurrentView {
	case ViewDashboard:
		return m.handleDashboardKey(msg)
	case ViewFasting:
		return m.handleFastingKey(msg)
	case ViewHistory:
		return m.handleHistoryKey(msg)
	}
	return m, nil
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleTasks()
	switch msg.String() {
	case "a":
		m.quickAddActive = true
		m.quickAddInput.SetValue("")
		m.quickAddInput.Focus()
		return m, nil
	case "j":
		if m.Cursor < len(visible)-1 {
			m.Cursor++
		}
		m.syncSelection(visible)
		return m, nil
	case "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		m.syncSelection(visible)
		return m, nil
	case " ", "space":
		if task, ok := m.selectedTask(visible); ok {
			m.Store.ToggleTask(task.ID)
			m.Status = StatusBar{Text: fmt.Sprintf("toggled: %s", task.Title)}
		}
		return m, nil
	case "x":
		if task, ok := m.selectedTask(visible); ok {
			m.Store.DeleteTask(task.ID)
			m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", task.Title)}
			if m.Cursor > 0 {
				m.Cursor--
			}
		}
		return m, nil
	case "w":
		m.Store.LogWater(250)
		m.Status = StatusBar{Text: "logged 250ml water"}
		return m, nil
	case "enter":
		// Only tasks in the Current section can be timer-started; a
		// future-scheduled task has no countdown until its moment passes.
		if task, ok := m.selectedTask(visible); ok && m.inCurrentPartition(task.ID) {
			m.startTaskTimer(task)
			m.Status = StatusBar{Text: fmt.Sprintf("timer started: %s (%dm)", task.Title, task.EffectiveDuration())}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleFastingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		if _, err := m.Store.StartFast(storeFastDefault()); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		} else {
			m.Status = StatusBar{Text: "16:8 fast started"}
		}
		return m, nil
	case "e":
		if ended, ok := m.Store.EndFast(); ok {
			m.Status = StatusBar{Text: fmt.Sprintf("fast ended after %s", formatClockSec(int(ended.EndTime.Sub(ended.StartTime).Seconds())))}
		} else {
			m.Status = StatusBar{Text: "no active fast"}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h":
		m.ViewDate = shiftDate(m.browsedDate(), -1)
		return m, nil
	case "l":
		// Browsing never goes past today.
		next := shiftDate(m.browsedDate(), 1)
		if next <= m.Store.Today() {
			m.ViewDate = next
		}
		return m, nil
	case "t":
		m.ViewDate = m.Store.Today()
		return m, nil
	}
	return m, nil
}

func (m Model) handleQuickAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quickAddActive = false
		m.quickAddInput.Blur()
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.quickAddInput.Value())
		m.quickAddActive = false
		m.quickAddInput.Blur()
		m.quickAddInput.SetValue("")
		if task, ok := m.Store.AddTask(storeTaskInput(title)); ok {
			m.Status = StatusBar{Text: fmt.Sprintf("added: %s", task.Title)}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	return m, cmd
}

func (m Model) handleSchedulerEvent(ev scheduler.Event) (tea.Model, tea.Cmd) {
	switch ev.Kind {
	case scheduler.KindRolloverCheck:
		if m.Store.CheckRollover() {
			m.Status = StatusBar{Text: "new day: yesterday archived, tasks carried forward"}
			m.notify("Rollover", m.Status.Text, "info")
			m.Cursor = 0
			m.SelectedTaskID = ""
		}
		m.scheduleRolloverCheck(m.Store.Now())
	case scheduler.KindTaskTimer:
		// A stale expiry is ignored: the timer may have been superseded
		// by another task's countdown, or its task completed by hand
		// before the countdown fired.
		if ev.TaskID != m.TimerTaskID {
			break
		}
		m.TimerTaskID = ""
		if !m.taskStillOpen(ev.TaskID) {
			break
		}
		m.Store.ToggleTask(ev.TaskID)
		m.Status = StatusBar{Text: "timer finished, task completed"}
		m.notify("Timer", m.Status.Text, "info")
		// Auto-advance to the next incomplete current task.
		if next, ok := m.nextCurrentTask(ev.TaskID); ok {
			m.startTaskTimer(next)
			m.Status = StatusBar{Text: fmt.Sprintf("timer finished, next up: %s", next.Title)}
		}
	case scheduler.KindScheduledTask:
		m.Status = StatusBar{Text: "a scheduled task is due now"}
		m.notify("Scheduled", m.Status.Text, "info")
	}
	if m.Engine != nil {
		return m, waitForEventCmd(m.Engine.C())
	}
	return m, nil
}

func (m Model) handleSuggestResult(msg SuggestPlanMsg) (tea.Model, tea.Cmd) {
	m.suggestPending = false
	if msg.Err != nil {
		m.Status = StatusBar{Text: msg.Err.Error(), IsError: true}
		return m, nil
	}
	m.Suggestions = msg.Stubs
	for _, stub := range msg.Stubs {
		m.Store.AddTask(storeSuggestInput(stub))
	}
	m.Status = StatusBar{Text: fmt.Sprintf("added %d suggested tasks", len(msg.Stubs))}
	return m, nil
}

// startTaskTimer schedules the countdown for one task. Reusing the single
// timer ID means a second start replaces the pending timer instead of
// stacking a duplicate.
func (m *Model) startTaskTimer(task model.Task) {
	if m.Engine == nil {
		return
	}
	ends := m.Store.Now().Add(time.Duration(task.EffectiveDuration()) * time.Minute)
	err := m.Engine.Schedule(scheduler.Event{
		ID:        taskTimerID,
		TaskID:    task.ID,
		Kind:      scheduler.KindTaskTimer,
		TriggerAt: ends,
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	m.TimerTaskID = task.ID
	m.TimerEndsAt = ends
}

func (m *Model) scheduleRolloverCheck(now time.Time) {
	if m.Engine == nil {
		return
	}
	_ = m.Engine.Schedule(scheduler.Event{
		ID:        rolloverCheckID,
		Kind:      scheduler.KindRolloverCheck,
		TriggerAt: now.Add(rolloverCheckInterval),
	})
}

func (m Model) inCurrentPartition(id string) bool {
	for _, task := range m.Store.Partition().Current {
		if task.ID == id {
			return true
		}
	}
	return false
}

func (m Model) taskStillOpen(id string) bool {
	for _, task := range m.Store.Tasks() {
		if task.ID == id {
			return !task.Completed
		}
	}
	return false
}

func (m Model) nextCurrentTask(afterID string) (model.Task, bool) {
	for _, task := range m.Store.Partition().Current {
		if task.ID != afterID && !task.Completed {
			return task, true
		}
	}
	return model.Task{}, false
}

// visibleTasks flattens the dashboard sections in display order so the
// cursor walks Current, then Upcoming, then Completed.
func (m Model) visibleTasks() []model.Task {
	p := m.Store.Partition()
	out := make([]model.Task, 0, len(p.Current)+len(p.Upcoming)+len(p.Completed))
	out = append(out, p.Current...)
	out = append(out, p.Upcoming...)
	out = append(out, p.Completed...)
	return out
}

func (m Model) selectedTask(visible []model.Task) (model.Task, bool) {
	if m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.Cursor], true
}

func (m *Model) syncSelection(visible []model.Task) {
	if m.Cursor >= 0 && m.Cursor < len(visible) {
		m.SelectedTaskID = visible[m.Cursor].ID
	} else {
		m.SelectedTaskID = ""
	}
}

func (m Model) browsedDate() string {
	if m.ViewDate == "" {
		return m.Store.Today()
	}
	return m.ViewDate
}

func shiftDate(date string, days int) string {
	t, err := time.Parse(clock.DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(clock.DateLayout)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(at time.Time) tea.Msg {
		return TickMsg{At: at}
	})
}

func waitForEventCmd(ch <-chan scheduler.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return SchedulerEventMsg{Event: ev}
	}
}
