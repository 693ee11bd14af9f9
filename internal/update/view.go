package update

import (
	"fmt"
	"strings"

	"zulaflow/internal/model"
	"zulaflow/internal/views"
)

func (m Model) View() string {
	light := m.Store.Theme() == model.ThemeLight

	var leftPane string
	switch m.CurrentView {
	case ViewDashboard:
		leftPane = m.renderDashboard()
	case ViewFasting:
		leftPane = m.renderFasting()
	case ViewStats:
		leftPane = m.renderStats()
	case ViewHistory:
		leftPane = m.renderHistory()
	}

	rightPane := strings.TrimSpace(strings.Join([]string{
		views.RenderCommandPalette(m.Palette.Active, m.Palette.Input),
		views.RenderSuggestions(m.suggestionData()),
		m.renderHelpIfVisible(light),
	}, "\n"))

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	notification := ""
	if len(m.Notifications) > 0 {
		last := m.Notifications[len(m.Notifications)-1]
		notification = views.RenderNotification(last.Level, last.Body)
	}
	if m.suggestPending {
		notification = strings.TrimSpace(notification + "\nplan: " + m.suggestSpinner.View() + " requesting")
	}

	greeting := "Hi"
	if name := FormatUserName(m.Store.UserName()); name != "" {
		greeting = "Hi " + name
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("zulaflow | %s | %s | %s", m.CurrentView, m.Store.Today(), greeting),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notification,
		Footer: fmt.Sprintf("keys: %s dashboard | %s fasting | %s stats | %s history | / command | %s help | %s quit",
			m.Keys.Dashboard, m.Keys.Fasting, m.Keys.Stats, m.Keys.History, m.Keys.Help, m.Keys.Quit),
		Light: light,
	})
}

func (m Model) renderDashboard() string {
	p := m.Store.Partition()
	timerLine := ""
	if m.TimerTaskID != "" {
		remaining := int(m.TimerEndsAt.Sub(m.Store.Now()).Seconds())
		if remaining > 0 {
			timerLine = formatClockSec(remaining)
		}
	}
	quickAdd := ""
	if m.quickAddActive {
		quickAdd = m.quickAddInput.View()
	}
	return views.RenderDashboardPanel(views.DashboardPanelData{
		Date:         m.Store.Today(),
		QuickAddView: quickAdd,
		Current:      taskItems(p.Current),
		Upcoming:     taskItems(p.Upcoming),
		Completed:    taskItems(p.Completed),
		SelectedID:   m.SelectedTaskID,
		WaterML:      m.Store.WaterIntakeML(),
		Steps:        m.Store.Steps(),
		TimerLine:    timerLine,
	})
}

func (m Model) renderFasting() string {
	data := views.FastingPanelData{}
	if active := m.Store.ActiveFast(); active != nil {
		data.Active = true
		data.Plan = string(active.Plan)
		data.Name = active.Name
		data.TargetHours = active.TargetDuration
		if elapsed, ok := m.Store.ElapsedFast(); ok {
			data.ElapsedSec = elapsed
			target := active.TargetDuration * 3600
			pct := 0.0
			if target > 0 && elapsed > 0 {
				pct = elapsed / target
			}
			if pct > 1 {
				pct = 1
			}
			data.ProgressView = m.fastProgress.ViewAs(pct)
		}
	}
	for _, preset := range m.Store.FastingPresets() {
		data.Presets = append(data.Presets, fmt.Sprintf("%s: %gh", preset.Name, preset.Duration))
	}
	history := m.Store.FastingHistory()
	if len(history) > 5 {
		history = history[:5]
	}
	for _, session := range history {
		length := ""
		if session.EndTime != nil {
			length = formatClockSec(int(session.EndTime.Sub(session.StartTime).Seconds()))
		}
		data.History = append(data.History, fmt.Sprintf("%s %s %s",
			session.StartTime.Format("2006-01-02"), session.Plan, length))
	}
	return views.RenderFastingPanel(data)
}

func (m Model) renderStats() string {
	state := m.Store.State()
	completed := 0
	for _, task := range state.Tasks {
		if task.Completed {
			completed++
		}
	}
	data := views.StatsPanelData{
		Steps:          state.Steps,
		WaterML:        m.Store.WaterIntakeML(),
		CompletedCount: completed,
		TotalCount:     len(state.Tasks),
	}
	weights := state.WeightHistory
	if len(weights) > 7 {
		weights = weights[len(weights)-7:]
	}
	for _, w := range weights {
		data.Weights = append(data.Weights, fmt.Sprintf("%s: %.1fkg", w.Date, w.Value))
	}
	notes := state.Notes
	if len(notes) > 5 {
		notes = notes[len(notes)-5:]
	}
	for _, n := range notes {
		data.Notes = append(data.Notes, fmt.Sprintf("[%s] %s", n.Type, n.Content))
	}
	return views.RenderStatsPanel(data)
}

func (m Model) renderHistory() string {
	date := m.browsedDate()
	if date == m.Store.Today() {
		// Today has no archive yet; show the live list instead.
		return m.renderDashboard()
	}
	log, ok := m.Store.HistoryOn(date)
	if !ok {
		return views.RenderHistoryPanel(views.HistoryPanelData{Date: date})
	}
	return views.RenderHistoryPanel(views.HistoryPanelData{
		Date:           date,
		Archived:       true,
		Steps:          log.Steps,
		CompletedCount: log.CompletedCount,
		TotalCount:     log.TotalCount,
		Items:          taskItems(log.Tasks),
	})
}

func (m Model) renderHelpIfVisible(light bool) string {
	if !m.HelpVisible {
		return ""
	}
	bindings := []string{
		"- 1/2/3/4: switch view",
		"- a: quick add (dashboard)",
		"- j/k: move, space: toggle, x: delete",
		"- enter: start task timer",
		"- w: log 250ml water",
		"- s/e: start/end fast (fasting)",
		"- h/l/t: browse days (history)",
		"- /: command palette",
	}
	md := "commands: `add`, `done`, `rename`, `water`, `fast`, `end`, `show`, `steps`, `import`, `export`, `suggest`"
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    bindings,
		HelpView:    views.RenderMarkdown(md, light),
	})
}

func (m Model) suggestionData() []views.SuggestionData {
	out := make([]views.SuggestionData, 0, len(m.Suggestions))
	for _, s := range m.Suggestions {
		out = append(out, views.SuggestionData{Title: s.Title, Category: s.Category, Minutes: s.Duration})
	}
	return out
}

func taskItems(tasks []model.Task) []views.TaskItemData {
	out := make([]views.TaskItemData, 0, len(tasks))
	for _, task := range tasks {
		item := views.TaskItemData{
			ID:          task.ID,
			Title:       task.Title,
			Category:    task.Category,
			DurationMin: float64(task.Duration),
			Done:        task.Completed,
		}
		if task.ScheduledTime != "" {
			item.ScheduledAt = task.ScheduledTime
		} else if task.ScheduledDate != "" {
			item.ScheduledAt = task.ScheduledDate
		}
		if task.CompletedAt != nil {
			item.CompletedAt = task.CompletedAt.Format("15:04")
		}
		out = append(out, item)
	}
	return out
}
