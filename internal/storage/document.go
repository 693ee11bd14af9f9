package storage

import (
	"encoding/json"
	"fmt"

	"zulaflow/internal/model"
)

// DecodeDocument parses a persisted or imported document into an AppState,
// defaulting every missing top-level field. Import is wholesale: there is no
// field-level merge and no schema validation beyond valid JSON; any parse
// failure is returned so the caller can leave its current state untouched.
func DecodeDocument(raw []byte) (model.AppState, error) {
	var state model.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return model.AppState{}, fmt.Errorf("storage: decode document: %w", err)
	}
	return withDefaults(state), nil
}

// EncodeDocument serializes the state with lastLogin refreshed to today.
// The output round-trips through DecodeDocument field-for-field.
func EncodeDocument(state model.AppState, today string) ([]byte, error) {
	state.LastLogin = today
	raw, err := json.MarshalIndent(withDefaults(state), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("storage: encode document: %w", err)
	}
	return raw, nil
}

func withDefaults(state model.AppState) model.AppState {
	if state.Tasks == nil {
		state.Tasks = make([]model.Task, 0)
	}
	if state.History == nil {
		state.History = make([]model.DayLog, 0)
	}
	if len(state.Categories) == 0 {
		state.Categories = append([]string(nil), model.DefaultCategories...)
	}
	if state.Templates == nil {
		state.Templates = make([]model.Template, 0)
	}
	if state.Theme == "" {
		state.Theme = model.ThemeDark
	}
	if state.Cart == nil {
		state.Cart = make([]model.CartItem, 0)
	}
	if state.FastingHistory == nil {
		state.FastingHistory = make([]model.FastingSession, 0)
	}
	if state.FastingPresets == nil {
		state.FastingPresets = make([]model.FastingPreset, 0)
	}
	if state.WeightHistory == nil {
		state.WeightHistory = make([]model.WeightEntry, 0)
	}
	if state.Notes == nil {
		state.Notes = make([]model.NoteEntry, 0)
	}
	return state
}
