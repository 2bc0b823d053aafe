package chamber

import (
	"fmt"
	"strings"
)

// VisitorKind identifies what kind of session a visitor needs.
type VisitorKind string

const (
	KindStudent VisitorKind = "S"
	KindAdmin   VisitorKind = "A"
	KindOnline  VisitorKind = "O"

	// KindNone marks an empty chamber.
	KindNone VisitorKind = ""
)

// ParseKind parses a visitor kind token from the visitor list.
// Tokens are case-insensitive; if the token is longer than one letter,
// its last letter is used (so "typeS" still reads as a Student).
func ParseKind(token string) (VisitorKind, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if len(t) > 1 {
		t = t[len(t)-1:]
	}
	switch VisitorKind(t) {
	case KindStudent, KindAdmin, KindOnline:
		return VisitorKind(t), nil
	}
	return KindNone, fmt.Errorf("invalid visitor kind %q (expected S, A or O)", token)
}

// Batch reports whether up to the chamber capacity of this kind may
// share a session. Online sessions are exclusive.
func (k VisitorKind) Batch() bool {
	return k == KindStudent || k == KindAdmin
}

// DisplayName returns the human-readable kind name used in event messages.
func (k VisitorKind) DisplayName() string {
	switch k {
	case KindStudent:
		return "Student"
	case KindAdmin:
		return "Admin"
	case KindOnline:
		return "Online"
	}
	return "None"
}

// VisitorRecord describes one registered visitor. Immutable once created.
type VisitorRecord struct {
	// Seq is the registration sequence number, unique per chamber and
	// monotonically increasing in arrival order.
	Seq  int
	Name string
	Kind VisitorKind
}
