package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	LeftPane     string
	RightPane    string
	StatusLine   string
	Footer       string
	Notification string
	Light        bool
}

type palette struct {
	header lipgloss.Style
	status lipgloss.Style
	errTxt lipgloss.Style
	panel  lipgloss.Style
	footer lipgloss.Style
}

func stylesFor(light bool) palette {
	accent := lipgloss.Color("12")
	muted := lipgloss.Color("8")
	if light {
		accent = lipgloss.Color("4")
		muted = lipgloss.Color("7")
	}
	return palette{
		header: lipgloss.NewStyle().Bold(true).Foreground(accent),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		errTxt: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		footer: lipgloss.NewStyle().Foreground(muted),
	}
}

func RenderApp(data AppData) string {
	st := stylesFor(data.Light)

	left := st.panel.Width(58).Render(data.LeftPane)
	right := st.panel.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := st.status.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = st.errTxt.Render(data.StatusLine)
	}

	lines := []string{
		st.header.Render(data.Header),
		row,
		status,
	}
	if data.Notification != "" {
		lines = append(lines, st.panel.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, st.footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string, light bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if light {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
