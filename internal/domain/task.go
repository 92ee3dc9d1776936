package domain

// Task represents a single unit of work tracked by the API.
// A task that has never been persisted has a zero ID; the store assigns
// a unique positive ID on first save and the ID is immutable afterwards.
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
}

// NewTask creates an unsaved Task with the given fields.
// The returned task has no ID until it is persisted.
//
// Note: title and description are intentionally not validated. The API
// accepts empty values for both, and Completed defaults to false.
func NewTask(title, description string, completed bool) *Task {
	return &Task{
		Title:       title,
		Description: description,
		Completed:   completed,
	}
}

// IsPersisted reports whether the task has been assigned an ID by a store.
func (t *Task) IsPersisted() bool {
	return t.ID != 0
}
