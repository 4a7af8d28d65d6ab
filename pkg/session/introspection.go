package session

import (
	"github.com/aretw0/introspection"
)

// State is a snapshot of a session for observability.
type State struct {
	Dir         string `json:"dir"`
	CurrentNote string `json:"current_note,omitempty"`
	Depth       int    `json:"depth"`
	Entries     int    `json:"entries"`
	Images      int    `json:"images"`
	Archived    int    `json:"archived"`
	Terminated  bool   `json:"terminated"`
	StorageType string `json:"storage_type"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	storageType := "storage"
	if comp, ok := s.storage.(introspection.Component); ok {
		storageType = comp.ComponentType()
	}

	return State{
		Dir:         s.dir,
		CurrentNote: s.current,
		Depth:       s.depth,
		Entries:     s.entries,
		Images:      s.images,
		Archived:    s.archived,
		Terminated:  s.terminated,
		StorageType: storageType,
	}
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)
