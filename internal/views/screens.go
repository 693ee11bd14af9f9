package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	ID          string
	Title       string
	Category    string
	DurationMin float64
	ScheduledAt string
	CompletedAt string
	Done        bool
}

type DashboardPanelData struct {
	Date         string
	ReadOnly     bool
	QuickAddView string
	Current      []TaskItemData
	Upcoming     []TaskItemData
	Completed    []TaskItemData
	SelectedID   string
	WaterML      int
	Steps        int
	TimerLine    string
}

type FastingPanelData struct {
	Active       bool
	Plan         string
	Name         string
	ElapsedSec   float64
	TargetHours  float64
	ProgressView string
	History      []string
	Presets      []string
}

type StatsPanelData struct {
	Steps          int
	WaterML        int
	CompletedCount int
	TotalCount     int
	Weights        []string
	Notes          []string
}

type HistoryPanelData struct {
	Date           string
	Archived       bool
	Steps          int
	CompletedCount int
	TotalCount     int
	Items          []TaskItemData
}

type SuggestionData struct {
	Title    string
	Category string
	Minutes  int
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("dashboard: %s", data.Date))
	if data.ReadOnly {
		b.WriteString(" (read-only)")
	}
	b.WriteString("\n")
	if !data.ReadOnly {
		b.WriteString(data.QuickAddView + "\n")
		b.WriteString("actions: [a]add [j/k]move [space]done [x]delete [w]+250ml\n")
	}
	b.WriteString(fmt.Sprintf("water: %dml | steps: %d\n", data.WaterML, data.Steps))
	if data.TimerLine != "" {
		b.WriteString("timer: " + data.TimerLine + "\n")
	}
	renderTaskSection(&b, "Current", data.Current, data.SelectedID)
	renderTaskSection(&b, "Upcoming", data.Upcoming, data.SelectedID)
	renderTaskSection(&b, "Completed", data.Completed, data.SelectedID)
	return strings.TrimSpace(b.String())
}

func renderTaskSection(b *strings.Builder, name string, items []TaskItemData, selectedID string) {
	b.WriteString(fmt.Sprintf("\n%s (%d):\n", name, len(items)))
	if len(items) == 0 {
		b.WriteString("  (empty)\n")
		return
	}
	for _, item := range items {
		cursor := " "
		if selectedID != "" && item.ID == selectedID {
			cursor = ">"
		}
		mark := "[ ]"
		if item.Done {
			mark = "[x]"
		}
		meta := item.Category
		if item.ScheduledAt != "" {
			meta += " @ " + item.ScheduledAt
		}
		if item.Done && item.CompletedAt != "" {
			meta += " done " + item.CompletedAt
		}
		if !item.Done && item.DurationMin > 0 {
			meta += fmt.Sprintf(" %gm", item.DurationMin)
		}
		b.WriteString(fmt.Sprintf("%s %s %s (%s)\n", cursor, mark, item.Title, strings.TrimSpace(meta)))
	}
}

func RenderFastingPanel(data FastingPanelData) string {
	var b strings.Builder
	b.WriteString("fasting:\n")
	if !data.Active {
		b.WriteString("no active fast\n")
		b.WriteString("actions: [s]start 16:8 [/]palette for plans\n")
	} else {
		label := data.Plan
		if data.Name != "" {
			label = fmt.Sprintf("%s (%s)", data.Name, data.Plan)
		}
		b.WriteString(fmt.Sprintf("session: %s | target: %gh\n", label, data.TargetHours))
		if data.ElapsedSec < 0 {
			b.WriteString(fmt.Sprintf("starts in: %s\n", formatClock(int(-data.ElapsedSec))))
		} else {
			b.WriteString(fmt.Sprintf("elapsed: %s\n", formatClock(int(data.ElapsedSec))))
			b.WriteString("progress: " + data.ProgressView + "\n")
		}
		b.WriteString("actions: [e]end fast\n")
	}
	if len(data.Presets) > 0 {
		b.WriteString("\npresets:\n")
		for _, p := range data.Presets {
			b.WriteString("  " + p + "\n")
		}
	}
	if len(data.History) > 0 {
		b.WriteString("\nrecent fasts:\n")
		for _, h := range data.History {
			b.WriteString("  " + h + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("tasks: %d/%d done today\n", data.CompletedCount, data.TotalCount))
	b.WriteString(fmt.Sprintf("water: %dml\n", data.WaterML))
	b.WriteString(fmt.Sprintf("steps: %d\n", data.Steps))
	if len(data.Weights) > 0 {
		b.WriteString("\nweight:\n")
		for _, w := range data.Weights {
			b.WriteString("  " + w + "\n")
		}
	}
	if len(data.Notes) > 0 {
		b.WriteString("\nnotes:\n")
		for _, n := range data.Notes {
			b.WriteString("  " + n + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderHistoryPanel(data HistoryPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("history: %s\n", data.Date))
	b.WriteString("actions: [h/l]prev/next day [t]today\n")
	if !data.Archived {
		b.WriteString("(no archived log for this date)")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("done: %d/%d | steps: %d\n", data.CompletedCount, data.TotalCount, data.Steps))
	for _, item := range data.Items {
		mark := "[ ]"
		if item.Done {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (%s)\n", mark, item.Title, item.Category))
	}
	return strings.TrimSpace(b.String())
}

func RenderSuggestions(items []SuggestionData) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("suggestions:\n")
	for i, s := range items {
		b.WriteString(fmt.Sprintf("  %d. %s (%s, %dm)\n", i+1, s.Title, s.Category, s.Minutes))
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("help (%s):\n", data.CurrentView))
	for _, line := range data.Bindings {
		b.WriteString(line + "\n")
	}
	if data.HelpView != "" {
		b.WriteString(data.HelpView)
	}
	return strings.TrimSpace(b.String())
}

func formatClock(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	h := totalSec / 3600
	m := (totalSec % 3600) / 60
	s := totalSec % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
