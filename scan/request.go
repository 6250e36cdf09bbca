package scan

// Field is a named column value of a status table row, kept in column order.
type Field struct {
	Name  string
	Value string
}

// RequestRecord is one in-flight HTTP request as seen on the status page.
type RequestRecord struct {
	ClientAddress string
	RequestLine   string
	Fields        []Field
}

// Field returns the value of the named column, if the row has it.
func (r RequestRecord) Field(name string) (value string, ok bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return
}

// Snapshot is the ordered set of request records captured by one poll. Rules must treat it as read-only.
type Snapshot []RequestRecord

// Clone returns a deep copy of the snapshot, so one rule cannot alter what the next rule sees.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	c := make(Snapshot, len(s))
	for i, r := range s {
		c[i] = r
		if r.Fields != nil {
			c[i].Fields = append([]Field(nil), r.Fields...)
		}
	}
	return c
}
