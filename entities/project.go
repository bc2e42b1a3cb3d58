package entities

// Project is a user-defined grouping label for custom tasks. Deleting a
// project unassigns its tasks, never deletes them.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Color       string   `json:"color,omitempty"`
	CreatedAt   FlexTime `json:"createdAt"`
}

// TaskSourcePrefs controls which task sources the merged views include.
type TaskSourcePrefs struct {
	ShowCustom bool `json:"showCustom"`
	ShowSystem bool `json:"showSystem"`
}
