package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

// JSON writes data as indented JSON to the given writer.
func JSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorResponse is the JSON envelope for structured error output.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// JSONError writes a structured error to the given writer as JSON.
func JSONError(w io.Writer, code, msg string, details map[string]any) {
	resp := ErrorResponse{Error: msg, Code: code, Details: details}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) // best-effort; if writer fails, nothing we can do
}

// TaskRecord is the JSON shape of a task.
type TaskRecord struct {
	Description string      `json:"description"`
	Status      task.Status `json:"status"`
	Marker      string      `json:"marker"`
}

// TaskRecords converts tasks to their JSON shape. The result is never nil
// so an empty list encodes as [].
func TaskRecords(tasks []task.Task) []TaskRecord {
	records := make([]TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, TaskRecord{
			Description: t.Description,
			Status:      t.Status,
			Marker:      t.Status.Marker(),
		})
	}
	return records
}

// WarningRecord is the JSON shape of a dropped line.
type WarningRecord struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// WarningRecords converts line warnings to their JSON shape.
func WarningRecords(warnings []task.LineWarning) []WarningRecord {
	records := make([]WarningRecord, 0, len(warnings))
	for _, w := range warnings {
		records = append(records, WarningRecord{Line: w.Line, Text: w.Text, Reason: w.Reason()})
	}
	return records
}
