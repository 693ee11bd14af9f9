package model

// DefaultCategories seeds the category set for fresh and imported states
// whose category list is empty.
var DefaultCategories = []string{
	"Cardio",
	"Strength",
	"Flexibility",
	"Mindfulness",
	"Health",
	"Recovery",
	"Nutrition",
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// CartItem is a shop item the user put aside. Checkout is handled outside
// the core; the cart only rides along in the persisted document.
type CartItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
	Quantity int     `json:"quantity"`
}

// AppState is the root persisted document. It is owned exclusively by the
// store; collaborators mutate it only through the store's methods.
type AppState struct {
	Tasks          []Task           `json:"tasks"`
	History        []DayLog         `json:"history"`
	LastLogin      string           `json:"lastLogin"`
	Categories     []string         `json:"categories"`
	Templates      []Template       `json:"templates"`
	Steps          int              `json:"steps"`
	UserName       string           `json:"userName,omitempty"`
	Theme          Theme            `json:"theme,omitempty"`
	CreateClicks   int              `json:"createClicks,omitempty"`
	Cart           []CartItem       `json:"cart"`
	FastingHistory []FastingSession `json:"fastingHistory"`
	ActiveFast     *FastingSession  `json:"activeFast"`
	FastingPresets []FastingPreset  `json:"fastingPresets"`
	WeightHistory  []WeightEntry    `json:"weightHistory"`
	Notes          []NoteEntry      `json:"notes"`
}

// NewAppState returns an empty state anchored at the given calendar date.
func NewAppState(today string) AppState {
	return AppState{
		Tasks:          make([]Task, 0),
		History:        make([]DayLog, 0),
		LastLogin:      today,
		Categories:     append([]string(nil), DefaultCategories...),
		Templates:      make([]Template, 0),
		Theme:          ThemeDark,
		Cart:           make([]CartItem, 0),
		FastingHistory: make([]FastingSession, 0),
		FastingPresets: make([]FastingPreset, 0),
		WeightHistory:  make([]WeightEntry, 0),
		Notes:          make([]NoteEntry, 0),
	}
}
