package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// ImportSchema is the top-level JSON structure of a roadmap plan file.
type ImportSchema struct {
	Goal      GoalImport       `json:"goal"`
	Roadmap   *domain.Roadmap  `json:"roadmap,omitempty"`
	Steps     []StepImport     `json:"steps,omitempty"`
	Resources []ResourceImport `json:"resources,omitempty"`
}

// GoalImport defines the goal fields in the import file.
type GoalImport struct {
	Title       string `json:"title"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// StepImport defines an action item. A zero Order places the step after the
// previous one.
type StepImport struct {
	Text      string  `json:"text"`
	Order     int     `json:"order,omitempty"`
	Completed bool    `json:"completed,omitempty"`
	DueDate   *string `json:"due_date,omitempty"`
}

// ResourceImport defines a learning link attached to the imported goal.
type ResourceImport struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Category string `json:"category,omitempty"`
}

// LoadImportSchema reads and parses a plan file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeImportSchema(f)
}

// DecodeImportSchema parses a plan from r. Unknown fields are rejected so
// typos surface instead of being silently dropped.
func DecodeImportSchema(r io.Reader) (*ImportSchema, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var schema ImportSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
