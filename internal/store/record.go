package store

// TaskRecord is the persisted representation of a task.
// The full collection is serialized as a JSON array of these records
// and written to a single named slot in the persistent store.
type TaskRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Course      string `json:"course"`
	Deadline    string `json:"deadline"` // Calendar date in YYYY-MM-DD format
	IsCompleted bool   `json:"isCompleted"`
}
