// Package grid holds the in-memory dataset, filter, selection and column
// widths behind the spreadsheet view.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStatus is returned when a status string is not Active or Inactive
	ErrUnknownStatus = errors.New("unknown status")
	// ErrUnknownColumn is returned when a column key is not part of the grid
	ErrUnknownColumn = errors.New("unknown column")
	// ErrUnknownFilter is returned when a filter name is not All, Active or Inactive
	ErrUnknownFilter = errors.New("unknown filter")
)

// Status is the state of a record
type Status int

const (
	Active Status = iota
	Inactive
)

// String returns the display value of the status
func (s Status) String() string {
	if s == Inactive {
		return "Inactive"
	}
	return "Active"
}

// Toggle returns the other status
func (s Status) Toggle() Status {
	if s == Active {
		return Inactive
	}
	return Active
}

// ParseStatus converts "Active" or "Inactive" to a Status
func ParseStatus(s string) (Status, error) {
	switch s {
	case "Active":
		return Active, nil
	case "Inactive":
		return Inactive, nil
	}
	return Active, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Record is one row of the dataset
type Record struct {
	Name   string
	Email  string
	Status Status
}

// Column identifies one of the fixed grid columns
type Column int

const (
	ColumnName Column = iota
	ColumnEmail
	ColumnStatus
)

var columnOrder = []Column{ColumnName, ColumnEmail, ColumnStatus}

// Columns returns the columns in display order
func Columns() []Column {
	out := make([]Column, len(columnOrder))
	copy(out, columnOrder)
	return out
}

// Key returns the column key used by the table and the config file
func (c Column) Key() string {
	switch c {
	case ColumnEmail:
		return "email"
	case ColumnStatus:
		return "status"
	default:
		return "name"
	}
}

// Label returns the header text for the column
func (c Column) Label() string {
	switch c {
	case ColumnEmail:
		return "Email"
	case ColumnStatus:
		return "Status"
	default:
		return "Name"
	}
}

// String implements fmt.Stringer
func (c Column) String() string {
	return c.Key()
}

// index returns the position of c in the column order
func (c Column) index() int {
	for i, col := range columnOrder {
		if col == c {
			return i
		}
	}
	return 0
}

// ParseColumn converts a column key to a Column
func ParseColumn(key string) (Column, error) {
	for _, c := range columnOrder {
		if c.Key() == key {
			return c, nil
		}
	}
	return ColumnName, fmt.Errorf("%w: %q", ErrUnknownColumn, key)
}

// Value returns the cell text of r in column c
func (r Record) Value(c Column) string {
	switch c {
	case ColumnEmail:
		return r.Email
	case ColumnStatus:
		return r.Status.String()
	default:
		return r.Name
	}
}

// SampleRecords returns the dataset a new session starts with
func SampleRecords() []Record {
	return []Record{
		{Name: "John Doe", Email: "john@example.com", Status: Active},
		{Name: "Jane Smith", Email: "jane@example.com", Status: Inactive},
		{Name: "Bob Ray", Email: "bob@example.com", Status: Active},
	}
}
