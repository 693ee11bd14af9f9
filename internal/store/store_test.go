package store

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"zulaflow/internal/model"
)

func openToday(t *testing.T) *Store {
	t.Helper()
	return Open(model.NewAppState("2026-03-01"), manualClock(t, "2026-03-01T10:00:00Z"), nil)
}

func TestAddTaskTrimsAndRejectsEmptyTitle(t *testing.T) {
	s := openToday(t)

	if _, ok := s.AddTask(TaskInput{Title: "   "}); ok {
		t.Fatal("expected whitespace title to be a silent no-op")
	}
	if len(s.Tasks()) != 0 {
		t.Fatalf("expected no tasks, got %d", len(s.Tasks()))
	}

	task, ok := s.AddTask(TaskInput{Title: "  Morning Stretch  ", Category: "Flexibility", Duration: 10})
	if !ok {
		t.Fatal("expected add to succeed")
	}
	if task.Title != "Morning Stretch" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if task.Completed || task.CompletedAt != nil {
		t.Fatal("new tasks must start incomplete")
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("new task invalid: %v", err)
	}
}

func TestAddTaskRegistersNovelCategory(t *testing.T) {
	s := openToday(t)

	s.AddTask(TaskInput{Title: "Breathwork", Category: "Calm"})
	if !containsString(s.Categories(), "Calm") {
		t.Fatalf("expected novel category appended, got %#v", s.Categories())
	}

	s.AddTask(TaskInput{Title: "Box Breathing", Category: "Calm"})
	if countString(s.Categories(), "Calm") != 1 {
		t.Fatalf("category set must stay duplicate-free: %#v", s.Categories())
	}
}

func TestAddCategoryIdempotent(t *testing.T) {
	s := openToday(t)
	before := len(s.Categories())

	s.AddCategory("Mobility")
	s.AddCategory("Mobility")
	s.AddCategory("  ")

	if got := len(s.Categories()); got != before+1 {
		t.Fatalf("expected exactly one new category, got %#v", s.Categories())
	}
}

func TestToggleAndDeleteUnknownIDsAreNoOps(t *testing.T) {
	s := openToday(t)
	if s.ToggleTask("nope") {
		t.Fatal("toggle of unknown id must be a no-op")
	}
	if s.DeleteTask("nope") {
		t.Fatal("delete of unknown id must be a no-op")
	}
}

func TestDeleteTaskRemovesPermanently(t *testing.T) {
	s := openToday(t)
	task, _ := s.AddTask(TaskInput{Title: "Walk the dog", Category: "Cardio"})

	if !s.DeleteTask(task.ID) {
		t.Fatal("expected delete to succeed")
	}
	if len(s.Tasks()) != 0 {
		t.Fatalf("expected empty list, got %#v", s.Tasks())
	}
}

func TestEditTaskTitleWindow(t *testing.T) {
	state := model.NewAppState("2026-03-01")
	c := manualClock(t, "2026-03-01T10:00:00Z")
	s := Open(state, c, nil)
	task, _ := s.AddTask(TaskInput{Title: "Read 10 pages", Category: "Mindfulness"})

	if err := s.EditTaskTitle(task.ID, "Read 20 pages"); err != nil {
		t.Fatalf("rename inside the window failed: %v", err)
	}
	if err := s.EditTaskTitle(task.ID, "   "); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if err := s.EditTaskTitle("missing", "x"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	c.Advance(25 * time.Hour)
	err := s.EditTaskTitle(task.ID, "Read 30 pages")
	if !errors.Is(err, ErrRenameWindowClosed) {
		t.Fatalf("expected ErrRenameWindowClosed, got %v", err)
	}
	if s.Tasks()[0].Title != "Read 20 pages" {
		t.Fatalf("rejected edit must be discarded, got %q", s.Tasks()[0].Title)
	}
}

func TestSaveAndLoadTemplate(t *testing.T) {
	s := openToday(t)
	original, _ := s.AddTask(TaskInput{Title: "Sun Salutations", Category: "Flexibility", Duration: 10})
	s.ToggleTask(original.ID)

	tpl, ok := s.SaveTemplate("Morning Routine")
	if !ok {
		t.Fatal("expected template save")
	}
	if len(tpl.Tasks) != 1 {
		t.Fatalf("expected one templated task, got %d", len(tpl.Tasks))
	}
	if tpl.Tasks[0].ID == original.ID {
		t.Fatal("templated tasks must get fresh ids")
	}
	if tpl.Tasks[0].Completed || tpl.Tasks[0].CompletedAt != nil {
		t.Fatal("templated tasks must be reset to incomplete")
	}

	before := len(s.Tasks())
	if err := s.LoadTemplate(tpl.ID); err != nil {
		t.Fatalf("load template: %v", err)
	}
	after := s.Tasks()
	if len(after) != before+1 {
		t.Fatalf("loading must append, not replace: %d -> %d", before, len(after))
	}
	loaded := after[len(after)-1]
	if loaded.ID == tpl.Tasks[0].ID || loaded.Completed {
		t.Fatalf("loaded task must be a fresh incomplete copy: %#v", loaded)
	}

	if err := s.LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestLogWaterEncodesAmountInTitle(t *testing.T) {
	s := openToday(t)
	task := s.LogWater(250)

	if task.Title != "Water 250ml" || task.Category != "Health" || task.Duration != 0 {
		t.Fatalf("unexpected water task: %#v", task)
	}
	if !task.Completed || task.CompletedAt == nil {
		t.Fatal("water tasks are pre-completed")
	}
	if got := s.WaterIntakeML(); got != 250 {
		t.Fatalf("expected derived intake 250, got %d", got)
	}

	s.LogWater(500)
	if got := s.WaterIntakeML(); got != 750 {
		t.Fatalf("expected derived intake 750, got %d", got)
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	s := openToday(t)
	s.AddTask(TaskInput{Title: "Protein Shake", Category: "Health", Duration: 5})
	s.LogWater(500)
	s.LogWeight(71.2)
	s.AddNote("good energy today", model.NoteJournal)
	s.SetUserName("Sam Okafor")

	exported, err := s.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := s.State()

	other := Open(model.NewAppState("2026-03-01"), manualClock(t, "2026-03-01T10:00:00Z"), nil)
	if err := other.Import(exported); err != nil {
		t.Fatalf("import: %v", err)
	}

	got := other.State()
	// lastLogin is refreshed on export; everything else must match.
	got.LastLogin = want.LastLogin
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\nwant %#v\ngot  %#v", want, got)
	}
}

func TestImportMalformedLeavesStateUntouched(t *testing.T) {
	s := openToday(t)
	s.AddTask(TaskInput{Title: "No Sugar", Category: "Nutrition"})
	before := s.State()

	if err := s.Import([]byte(`{"tasks": not json`)); err == nil {
		t.Fatal("expected import error for malformed JSON")
	}
	if !reflect.DeepEqual(s.State(), before) {
		t.Fatal("failed import must leave state untouched")
	}
}

func TestMutationsTriggerPersistence(t *testing.T) {
	var count int
	s := Open(model.NewAppState("2026-03-01"), manualClock(t, "2026-03-01T10:00:00Z"),
		PersistFunc(func(model.AppState) { count++ }))

	s.AddTask(TaskInput{Title: "Squats 3x20", Category: "Strength"})
	s.AddSteps(120)
	s.SetTheme(model.ThemeLight)
	if count != 3 {
		t.Fatalf("expected one persist per mutation, got %d", count)
	}

	// No-op mutations do not persist.
	s.ToggleTask("missing")
	if count != 3 {
		t.Fatalf("no-op must not persist, got %d", count)
	}
}

func TestCartMergesByID(t *testing.T) {
	s := openToday(t)

	s.AddToCart(model.CartItem{ID: "mat-1", Title: "Yoga Mat", Price: 29.99, Quantity: 1})
	s.AddToCart(model.CartItem{ID: "mat-1", Title: "Yoga Mat", Price: 29.99, Quantity: 2})
	s.AddToCart(model.CartItem{ID: "band-1", Title: "Resistance Band", Price: 9.99, Quantity: 1})
	s.AddToCart(model.CartItem{Title: "no id", Quantity: 1})

	cart := s.State().Cart
	if len(cart) != 2 {
		t.Fatalf("expected repeats merged, got %#v", cart)
	}
	if cart[0].ID != "mat-1" || cart[0].Quantity != 3 {
		t.Fatalf("expected quantity bumped to 3, got %#v", cart[0])
	}

	s.RemoveFromCart("mat-1")
	cart = s.State().Cart
	if len(cart) != 1 || cart[0].ID != "band-1" {
		t.Fatalf("expected mat removed, got %#v", cart)
	}
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func countString(items []string, target string) int {
	n := 0
	for _, item := range items {
		if item == target {
			n++
		}
	}
	return n
}
