package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"zulaflow/internal/clock"
	"zulaflow/internal/model"
)

// TaskInput carries the user-facing fields for a new task.
type TaskInput struct {
	Title         string
	Category      string
	Duration      int
	ScheduledDate string
	ScheduledTime string
	Recurring     bool
}

// AddTask appends a new incomplete task. A title that trims to nothing is a
// silent no-op; a novel category is added to the category set as a side
// effect.
func (s *Store) AddTask(in TaskInput) (model.Task, bool) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Task{}, false
	}

	task := model.Task{
		ID:            uuid.NewString(),
		Title:         title,
		Category:      in.Category,
		Duration:      in.Duration,
		ScheduledDate: in.ScheduledDate,
		ScheduledTime: in.ScheduledTime,
		Recurring:     in.Recurring,
		CreatedAt:     s.clock.Now(),
	}
	s.state.Tasks = append(s.state.Tasks, task)
	if in.Category != "" {
		s.addCategory(in.Category)
	}
	s.persist()
	return task, true
}

// ToggleTask flips completion, stamping or clearing CompletedAt so the
// completion invariant holds. Unknown ids are a no-op.
func (s *Store) ToggleTask(id string) bool {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID != id {
			continue
		}
		if s.state.Tasks[i].Completed {
			s.state.Tasks[i].Completed = false
			s.state.Tasks[i].CompletedAt = nil
		} else {
			now := s.clock.Now()
			s.state.Tasks[i].Completed = true
			s.state.Tasks[i].CompletedAt = &now
		}
		s.persist()
		return true
	}
	return false
}

// DeleteTask removes a task permanently. There is no tombstone.
func (s *Store) DeleteTask(id string) bool {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			s.state.Tasks = append(s.state.Tasks[:i], s.state.Tasks[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// EditTaskTitle renames a task. Titles freeze 24h after creation; empty
// titles are rejected and the edit discarded.
func (s *Store) EditTaskTitle(id, newTitle string) error {
	title := strings.TrimSpace(newTitle)
	if title == "" {
		return ErrEmptyTitle
	}
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID != id {
			continue
		}
		if !s.state.Tasks[i].Renamable(s.clock.Now()) {
			return ErrRenameWindowClosed
		}
		s.state.Tasks[i].Title = title
		s.persist()
		return nil
	}
	return ErrTaskNotFound
}

// AddCategory appends a category if it is not already present.
func (s *Store) AddCategory(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if s.addCategory(name) {
		s.persist()
	}
}

func (s *Store) addCategory(name string) bool {
	for _, c := range s.state.Categories {
		if c == name {
			return false
		}
	}
	s.state.Categories = append(s.state.Categories, name)
	return true
}

// SaveTemplate stores a deep copy of the live list under a name. Every
// copied task gets a fresh id and is reset to incomplete.
func (s *Store) SaveTemplate(name string) (model.Template, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Template{}, false
	}
	tpl := model.Template{
		ID:        uuid.NewString(),
		Name:      name,
		Tasks:     copyTasksFresh(s.state.Tasks, s.clock),
		CreatedAt: s.clock.Now(),
	}
	s.state.Templates = append(s.state.Templates, tpl)
	s.persist()
	return tpl, true
}

// LoadTemplate appends fresh copies of a template's tasks onto the live
// list. It never replaces the live list.
func (s *Store) LoadTemplate(id string) error {
	for _, tpl := range s.state.Templates {
		if tpl.ID != id {
			continue
		}
		s.state.Tasks = append(s.state.Tasks, copyTasksFresh(tpl.Tasks, s.clock)...)
		s.persist()
		return nil
	}
	return ErrTemplateNotFound
}

func copyTasksFresh(tasks []model.Task, c clock.Clock) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		copied := t
		copied.ID = uuid.NewString()
		copied.Completed = false
		copied.CompletedAt = nil
		copied.CreatedAt = c.Now()
		out = append(out, copied)
	}
	return out
}

// LogWater records water intake as a pre-completed Health task whose title
// encodes the amount. Totals are derived back out of titles, never stored.
func (s *Store) LogWater(amountML int) model.Task {
	now := s.clock.Now()
	task := model.Task{
		ID:            uuid.NewString(),
		Title:         fmt.Sprintf("Water %dml", amountML),
		Completed:     true,
		Category:      "Health",
		Duration:      0,
		ScheduledDate: clock.Today(s.clock),
		ScheduledTime: now.Format("15:04"),
		CompletedAt:   &now,
		CreatedAt:     now,
	}
	s.state.Tasks = append(s.state.Tasks, task)
	s.persist()
	return task
}

// LogWeight appends a weight entry dated today.
func (s *Store) LogWeight(kg float64) model.WeightEntry {
	entry := model.WeightEntry{
		ID:    uuid.NewString(),
		Date:  clock.Today(s.clock),
		Value: kg,
	}
	s.state.WeightHistory = append(s.state.WeightHistory, entry)
	s.persist()
	return entry
}

// AddNote appends a note entry dated today. Unknown note types fall back
// to journal.
func (s *Store) AddNote(content string, kind model.NoteType) (model.NoteEntry, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return model.NoteEntry{}, false
	}
	if !kind.IsValid() {
		kind = model.NoteJournal
	}
	entry := model.NoteEntry{
		ID:      uuid.NewString(),
		Date:    clock.Today(s.clock),
		Content: content,
		Type:    kind,
	}
	s.state.Notes = append(s.state.Notes, entry)
	s.persist()
	return entry, true
}

// AddSteps adds step increments from the motion collaborator.
func (s *Store) AddSteps(delta int) {
	if delta <= 0 {
		return
	}
	s.state.Steps += delta
	s.persist()
}

func (s *Store) SetUserName(name string) {
	s.state.UserName = strings.TrimSpace(name)
	s.persist()
}

func (s *Store) SetTheme(theme model.Theme) {
	if theme != model.ThemeLight && theme != model.ThemeDark {
		return
	}
	s.state.Theme = theme
	s.persist()
}

func (s *Store) RecordCreateClick() {
	s.state.CreateClicks++
	s.persist()
}

// AddToCart merges by item id, bumping quantity for repeats.
func (s *Store) AddToCart(item model.CartItem) {
	if item.ID == "" || item.Quantity <= 0 {
		return
	}
	for i := range s.state.Cart {
		if s.state.Cart[i].ID == item.ID {
			s.state.Cart[i].Quantity += item.Quantity
			s.persist()
			return
		}
	}
	s.state.Cart = append(s.state.Cart, item)
	s.persist()
}

func (s *Store) RemoveFromCart(id string) {
	for i := range s.state.Cart {
		if s.state.Cart[i].ID == id {
			s.state.Cart = append(s.state.Cart[:i], s.state.Cart[i+1:]...)
			s.persist()
			return
		}
	}
}
