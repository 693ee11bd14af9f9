package update

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"zulaflow/internal/commands"
	"zulaflow/internal/model"
	"zulaflow/internal/store"
	"zulaflow/internal/suggest"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	// Suggestions are the one async command: the request runs off the
	// update loop and lands back as a SuggestPlanMsg.
	if cmd.Type == commands.TypeSuggest {
		if m.Suggest == nil {
			m.Status = StatusBar{Text: suggest.ErrNotConfigured.Error(), IsError: true}
			return m, nil
		}
		m.suggestPending = true
		m.Status = StatusBar{Text: "requesting plan..."}
		return m, tea.Batch(m.suggestSpinner.Tick, suggestPlanCmd(m.Suggest, cmd.Suggest.Goal))
	}

	res, err := commands.Execute(cmd, m.commandHandlers())
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	m.notify("Command", res.Message, "info")

	if cmd.Type == commands.TypeShow {
		m.applyShow(*cmd.Show)
	}
	return m, nil
}

func (m *Model) commandHandlers() commands.Handlers {
	return commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, ok := m.Store.AddTask(store.TaskInput{
				Title:         a.Title,
				Category:      a.Category,
				Duration:      a.Duration,
				ScheduledTime: a.ScheduledTime,
				ScheduledDate: a.ScheduledDate,
			})
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "task title is empty"}
			}
			return commands.Result{Message: fmt.Sprintf("added: %s", task.Title)}, nil
		},
		Done: func(d commands.DoneArgs) (commands.Result, error) {
			task, ok := m.findTaskByTitle(d.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task matching %q", d.Target)}
			}
			m.Store.ToggleTask(task.ID)
			return commands.Result{Message: fmt.Sprintf("toggled: %s", task.Title)}, nil
		},
		Rename: func(r commands.RenameArgs) (commands.Result, error) {
			task, ok := m.findTaskByTitle(r.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task matching %q", r.Target)}
			}
			if err := m.Store.EditTaskTitle(task.ID, r.Title); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("renamed: %s", r.Title)}, nil
		},
		Water: func(w commands.WaterArgs) (commands.Result, error) {
			m.Store.LogWater(w.AmountML)
			return commands.Result{Message: fmt.Sprintf("logged %dml water", w.AmountML)}, nil
		},
		Fast: func(f commands.FastArgs) (commands.Result, error) {
			session, err := m.Store.StartFast(store.FastInput{Plan: f.Plan, Hours: f.Hours, Name: f.Name})
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("fast started: %s (%gh)", session.Plan, session.TargetDuration)}, nil
		},
		End: func() (commands.Result, error) {
			if _, ok := m.Store.EndFast(); !ok {
				return commands.Result{Message: "no active fast"}, nil
			}
			return commands.Result{Message: "fast ended"}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			return commands.Result{Message: fmt.Sprintf("showing %s", s.Subject)}, nil
		},
		Steps: func(s commands.StepsArgs) (commands.Result, error) {
			m.Store.AddSteps(s.Count)
			return commands.Result{Message: fmt.Sprintf("added %d steps (total %d)", s.Count, m.Store.Steps())}, nil
		},
		Import: func(i commands.ImportArgs) (commands.Result, error) {
			raw, err := os.ReadFile(i.Path)
			if err != nil {
				return commands.Result{}, err
			}
			if err := m.Store.Import(raw); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("imported %s", i.Path)}, nil
		},
		Export: func(e commands.ExportArgs) (commands.Result, error) {
			payload, err := m.Store.Export()
			if err != nil {
				return commands.Result{}, err
			}
			if err := os.WriteFile(e.Path, payload, 0o644); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("exported to %s", e.Path)}, nil
		},
	}
}

func (m *Model) applyShow(args commands.ShowArgs) {
	switch args.Subject {
	case "today":
		m.CurrentView = ViewDashboard
		m.ViewDate = ""
	case "fasting":
		m.CurrentView = ViewFasting
	case "stats":
		m.CurrentView = ViewStats
	case "history":
		m.CurrentView = ViewHistory
		if args.Date != "" {
			m.ViewDate = args.Date
		} else if m.ViewDate == "" {
			m.ViewDate = m.Store.Today()
		}
	}
}

func (m Model) findTaskByTitle(needle string) (model.Task, bool) {
	needle = strings.ToLower(strings.TrimSpace(needle))
	for _, task := range m.Store.Tasks() {
		if strings.Contains(strings.ToLower(task.Title), needle) {
			return task, true
		}
	}
	return model.Task{}, false
}

func suggestPlanCmd(client *suggest.Client, goal string) tea.Cmd {
	return func() tea.Msg {
		stubs, err := client.Plan(context.Background(), goal)
		return SuggestPlanMsg{Stubs: stubs, Err: err}
	}
}

func storeTaskInput(title string) store.TaskInput {
	return store.TaskInput{Title: title}
}

func storeSuggestInput(stub suggest.Stub) store.TaskInput {
	return store.TaskInput{
		Title:    stub.Title,
		Category: stub.Category,
		Duration: stub.Duration,
	}
}

func storeFastDefault() store.FastInput {
	return store.FastInput{Plan: model.Plan16_8}
}
