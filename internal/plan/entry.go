package plan

// Entry is a single item in a plan: a title and an optional
// longer description. Both are single logical lines.
type Entry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewEntry returns an Entry with a title and no description.
func NewEntry(title string) Entry {
	return Entry{Title: title}
}

// NewEntryWithDescription returns an Entry with the given title and description.
func NewEntryWithDescription(title, description string) Entry {
	return Entry{Title: title, Description: description}
}
