package transport

// Static is an in-memory Transport backed by a fixed set of signals.
// It is intended for tests, fixtures and non-HTTP hosts that stage
// files themselves.
type Static struct {
	fields   map[string][]FileSignal
	disabled bool
}

// NewStatic creates a Static transport with uploads enabled and no fields.
func NewStatic() *Static {
	return &Static{fields: make(map[string][]FileSignal)}
}

// Add appends signals under the given field and returns the transport
// for chaining.
func (s *Static) Add(field string, signals ...FileSignal) *Static {
	s.fields[field] = append(s.fields[field], signals...)
	return s
}

// AddFile appends a successfully staged file under the given field.
func (s *Static) AddFile(field, tmpPath, name string) *Static {
	return s.Add(field, FileSignal{TmpPath: tmpPath, Name: name, Code: CodeOK})
}

// Disable marks uploads as disallowed by the host.
func (s *Static) Disable() *Static {
	s.disabled = true
	return s
}

// UploadsEnabled implements Transport.
func (s *Static) UploadsEnabled() bool {
	return !s.disabled
}

// Files implements Transport.
func (s *Static) Files(field string) ([]FileSignal, bool) {
	signals, ok := s.fields[field]
	return signals, ok
}
