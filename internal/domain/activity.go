package domain

// Activity is an extracurricular offering with its roster. The name doubles as
// the catalog lookup key and is matched exactly, including case and whitespace.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// HasParticipant reports whether the email is currently on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
