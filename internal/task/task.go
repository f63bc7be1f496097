// Package task parses tasks.txt lines into tasks.
package task

// Task is one parsed line of the tasks file. It is a value and never
// changes after parsing.
type Task struct {
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// String renders the task back into its line form.
func (t Task) String() string {
	return t.Status.Marker() + Separator + t.Description
}
