package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sudo-init-do/sgu/internal/user"
)

func TestReduceFetchLifecycle(t *testing.T) {
	s := State{Users: []user.User{}}

	s = Reduce(s, FetchStarted{})
	assert.True(t, s.Loading)
	assert.Equal(t, uint64(1), s.Issued)

	s = Reduce(s, FetchSucceeded{Token: 1, Users: []user.User{{ID: "u1", Name: "Ana"}}})
	assert.False(t, s.Loading)
	assert.Len(t, s.Users, 1)
	assert.Empty(t, s.Error)
}

func TestReduceFetchFailedKeepsUsers(t *testing.T) {
	s := State{Users: []user.User{{ID: "u1"}}, Issued: 3, Loading: true}

	s = Reduce(s, FetchFailed{Token: 3})

	assert.False(t, s.Loading)
	assert.Equal(t, MsgFetchFailed, s.Error)
	assert.Equal(t, []user.User{{ID: "u1"}}, s.Users)
}

func TestReduceFetchStartedClearsError(t *testing.T) {
	s := Reduce(State{Error: MsgFetchFailed}, FetchStarted{})
	assert.Empty(t, s.Error)
}

func TestReduceDropsStaleResults(t *testing.T) {
	s := Reduce(State{}, FetchStarted{}) // token 1
	s = Reduce(s, FetchStarted{})        // token 2

	s = Reduce(s, FetchSucceeded{Token: 2, Users: []user.User{{ID: "new"}}})
	s = Reduce(s, FetchSucceeded{Token: 1, Users: []user.User{{ID: "old"}}})
	s = Reduce(s, FetchFailed{Token: 1})

	assert.Equal(t, []user.User{{ID: "new"}}, s.Users)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Error)
}

func TestReduceStaleResultKeepsLoading(t *testing.T) {
	s := Reduce(State{}, FetchStarted{})
	s = Reduce(s, FetchStarted{})

	s = Reduce(s, FetchFailed{Token: 1})

	assert.True(t, s.Loading)
	assert.Empty(t, s.Error)
}

func TestReduceIsPure(t *testing.T) {
	users := []user.User{{ID: "u1", Name: "Ana"}}
	before := State{Users: []user.User{{ID: "u0"}}, Issued: 1, Loading: true}

	after := Reduce(before, FetchSucceeded{Token: 1, Users: users})
	users[0].Name = "changed"
	after.Users[0].ID = "mutated"

	assert.Equal(t, []user.User{{ID: "u0"}}, before.Users)
	assert.True(t, before.Loading)
	assert.Equal(t, "Ana", after.Users[0].Name)
}

func TestReduceDraft(t *testing.T) {
	s := Reduce(State{}, DraftEdited{Field: FieldName, Value: "Ana"})
	s = Reduce(s, DraftEdited{Field: FieldEmail, Value: "a@x.com"})
	s = Reduce(s, DraftEdited{Field: FieldPhone, Value: "123"})
	assert.Equal(t, user.Fields{Name: "Ana", Email: "a@x.com", Phone: "123"}, s.Draft)

	s = Reduce(s, DraftReset{})
	assert.Equal(t, user.Fields{}, s.Draft)
}
