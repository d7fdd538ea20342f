package directory

import "github.com/sudo-init-do/sgu/internal/user"

// State is everything the user directory shows. Users is always a copy of
// the last accepted server response and is replaced wholesale, never patched.
type State struct {
	Users   []user.User
	Draft   user.Fields
	Loading bool
	Error   string
	// Issued is the token of the most recently started fetch.
	Issued uint64
}

// Clone returns a copy of s that shares no memory with it.
func (s State) Clone() State {
	if s.Users != nil {
		users := make([]user.User, len(s.Users))
		copy(users, s.Users)
		s.Users = users
	}
	return s
}

type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldPhone
)

// Event is an input to Reduce.
type Event interface {
	event()
}

// FetchStarted issues a new fetch token (State.Issued after the transition).
type FetchStarted struct{}

// FetchSucceeded carries the server's collection for the fetch with Token.
type FetchSucceeded struct {
	Token uint64
	Users []user.User
}

type FetchFailed struct {
	Token uint64
}

type DraftEdited struct {
	Field Field
	Value string
}

type DraftReset struct{}

func (FetchStarted) event()   {}
func (FetchSucceeded) event() {}
func (FetchFailed) event()    {}
func (DraftEdited) event()    {}
func (DraftReset) event()     {}

// Reduce applies ev to s. Fetch results whose token is not the latest issued
// one are dropped, so an older response never overwrites a newer one.
func Reduce(s State, ev Event) State {
	s = s.Clone()
	switch ev := ev.(type) {
	case FetchStarted:
		s.Issued++
		s.Loading = true
		s.Error = ""
	case FetchSucceeded:
		if ev.Token != s.Issued {
			return s
		}
		users := make([]user.User, len(ev.Users))
		copy(users, ev.Users)
		s.Users = users
		s.Loading = false
	case FetchFailed:
		if ev.Token != s.Issued {
			return s
		}
		s.Loading = false
		s.Error = MsgFetchFailed
	case DraftEdited:
		switch ev.Field {
		case FieldName:
			s.Draft.Name = ev.Value
		case FieldEmail:
			s.Draft.Email = ev.Value
		case FieldPhone:
			s.Draft.Phone = ev.Value
		}
	case DraftReset:
		s.Draft = user.Fields{}
	}
	return s
}
