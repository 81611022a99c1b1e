package grid

// CellEdit is a typed write to a single field of a record.
// The concrete types are NameEdit, EmailEdit and StatusEdit.
type CellEdit interface {
	// Column returns the column the edit targets
	Column() Column
	apply(r *Record)
}

// NameEdit replaces the name field
type NameEdit string

// EmailEdit replaces the email field
type EmailEdit string

// StatusEdit replaces the status field
type StatusEdit Status

func (NameEdit) Column() Column   { return ColumnName }
func (EmailEdit) Column() Column  { return ColumnEmail }
func (StatusEdit) Column() Column { return ColumnStatus }

func (e NameEdit) apply(r *Record)   { r.Name = string(e) }
func (e EmailEdit) apply(r *Record)  { r.Email = string(e) }
func (e StatusEdit) apply(r *Record) { r.Status = Status(e) }

// EditFor builds the edit for a value typed into column c.
// Name and email accept any text; status must parse.
func EditFor(c Column, value string) (CellEdit, error) {
	switch c {
	case ColumnName:
		return NameEdit(value), nil
	case ColumnEmail:
		return EmailEdit(value), nil
	case ColumnStatus:
		s, err := ParseStatus(value)
		if err != nil {
			return nil, err
		}
		return StatusEdit(s), nil
	}
	return nil, ErrUnknownColumn
}
