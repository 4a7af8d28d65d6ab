package fs

import (
	"github.com/aretw0/introspection"
)

// StorageState exposes operation counters for observability.
type StorageState struct {
	Writes  int `json:"writes"`
	Appends int `json:"appends"`
	Copies  int `json:"copies"`
	Renames int `json:"renames"`
	Removes int `json:"removes"`
}

// State implements introspection.Introspectable.
func (s *Storage) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StorageState{
		Writes:  s.writes,
		Appends: s.appends,
		Copies:  s.copies,
		Renames: s.renames,
		Removes: s.removes,
	}
}

// ComponentType implements introspection.Component.
func (s *Storage) ComponentType() string {
	return "storage"
}

var _ introspection.Introspectable = (*Storage)(nil)
var _ introspection.Component = (*Storage)(nil)
