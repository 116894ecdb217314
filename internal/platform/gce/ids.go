package gce

import (
	"fmt"
	"strings"
)

// NodeID identifies a node by its (zone, name) pair. External identifiers
// encode the pair as a single slash-joined token, e.g.
// "us-central1-a/vm1".
type NodeID struct {
	Zone string
	Name string
}

// ParseNodeID parses a slash-encoded node identifier.
func ParseNodeID(id string) (NodeID, error) {
	zone, name, ok := strings.Cut(id, "/")
	if !ok || zone == "" || name == "" {
		return NodeID{}, &ValidationError{Field: "id", Reason: fmt.Sprintf("%q is not a zone/name pair", id)}
	}
	return NodeID{Zone: zone, Name: name}, nil
}

// String returns the slash-encoded form.
func (id NodeID) String() string {
	return id.Zone + "/" + id.Name
}
