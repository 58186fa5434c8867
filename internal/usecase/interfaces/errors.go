package interfaces

import "errors"

var (
	// ErrVersionConflict is returned by versioned repositories when the stored
	// record changed since it was read.
	ErrVersionConflict = errors.New("record was modified by another actor")
	// ErrCollaboratorNotConfigured is returned by HTTP collaborators without a URL.
	ErrCollaboratorNotConfigured = errors.New("collaborator not configured")
)
