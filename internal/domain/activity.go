package domain

import "errors"

var (
	// ErrActivityNotFound is returned when an activity name is not in the registry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrNotRegistered is returned when unregistering an email that is not on the roster.
	ErrNotRegistered = errors.New("student is not registered for this activity")
	// ErrAlreadyRegistered is returned by the duplicate-signup rule.
	ErrAlreadyRegistered = errors.New("student is already signed up for this activity")
	// ErrActivityFull is returned by the capacity rule.
	ErrActivityFull = errors.New("activity is full")
)

// Activity is one extracurricular offering with its participant roster.
// Participants are student email addresses in signup order.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// IsRegistered reports whether the email is already on the roster.
func (a Activity) IsRegistered(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a copy whose roster does not alias the receiver's.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
