// Package directory keeps a local copy of the user list in sync with the
// users API. Every mutation is followed by a full refetch; nothing is
// patched locally.
package directory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sudo-init-do/sgu/internal/prompt"
	"github.com/sudo-init-do/sgu/internal/user"
)

// API is the users REST API. *userapi.Client implements it.
type API interface {
	List(ctx context.Context) ([]user.User, error)
	Create(ctx context.Context, f user.Fields) (user.User, error)
	Update(ctx context.Context, id string, f user.Fields) (user.User, error)
	Delete(ctx context.Context, id string) error
}

// Directory is safe for concurrent use. Network calls run outside the lock,
// so overlapping operations proceed independently.
type Directory struct {
	api      API
	prompter prompt.Prompter
	notifier prompt.Notifier
	log      logrus.FieldLogger

	mu    sync.Mutex
	state State
}

func New(api API, p prompt.Prompter, n prompt.Notifier, log logrus.FieldLogger) *Directory {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Directory{
		api:      api,
		prompter: p,
		notifier: n,
		log:      log,
		state:    State{Users: []user.User{}},
	}
}

// Snapshot returns a copy of the current state.
func (d *Directory) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.Clone()
}

func (d *Directory) dispatch(ev Event) State {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = Reduce(d.state, ev)
	return d.state.Clone()
}

// SetDraft replaces the create form's pending input.
func (d *Directory) SetDraft(f user.Fields) {
	d.dispatch(DraftEdited{Field: FieldName, Value: f.Name})
	d.dispatch(DraftEdited{Field: FieldEmail, Value: f.Email})
	d.dispatch(DraftEdited{Field: FieldPhone, Value: f.Phone})
}

func (d *Directory) EditDraft(field Field, value string) {
	d.dispatch(DraftEdited{Field: field, Value: value})
}

// FetchAll replaces the local list with the server's. On failure the list
// is left as it was and the error banner is set.
func (d *Directory) FetchAll(ctx context.Context) error {
	token := d.dispatch(FetchStarted{}).Issued
	log := d.log.WithField("token", token)

	users, err := d.api.List(ctx)
	if err != nil {
		d.dispatch(FetchFailed{Token: token})
		log.WithError(err).Warn("fetch users failed")
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	s := d.dispatch(FetchSucceeded{Token: token, Users: users})
	if s.Issued != token {
		log.Debug("discarded stale fetch result")
		return nil
	}
	log.WithField("count", len(users)).Debug("users fetched")
	return nil
}

// Create submits the draft as it stands when Create is called. The draft is
// cleared only after the server accepts it, discarding edits made while the
// request was in flight.
func (d *Directory) Create(ctx context.Context) error {
	draft := d.Snapshot().Draft
	if !draft.Complete() {
		d.notifier.Warn(TitleIncomplete, MsgIncomplete)
		return ErrIncomplete
	}

	created, err := d.api.Create(ctx, draft)
	if err != nil {
		d.log.WithError(err).Warn("create user failed")
		d.notifier.Fail(TitleError, MsgCreateFailed)
		return fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}
	d.log.WithField("user_id", created.ID).Info("user created")

	d.dispatch(DraftReset{})
	d.refetch(ctx)
	d.notifier.Toast(ToastCreated)
	return nil
}

// Update asks for new values for the listed user id and submits them as a
// full replacement. A dismissed prompt sends nothing.
func (d *Directory) Update(ctx context.Context, id string) error {
	current, ok := d.find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUser, id)
	}

	fields, confirmed, err := d.prompter.PromptForEdit(ctx, current)
	if err != nil {
		return err
	}
	if !confirmed {
		d.log.WithField("user_id", id).Debug("edit cancelled")
		return nil
	}
	fields = fields.Trimmed()
	if !fields.Complete() {
		d.notifier.Warn(TitleIncomplete, MsgEditIncomplete)
		return ErrIncomplete
	}

	if _, err := d.api.Update(ctx, id, fields); err != nil {
		d.log.WithError(err).WithField("user_id", id).Warn("update user failed")
		d.notifier.Fail(TitleError, MsgUpdateFailed)
		return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}
	d.log.WithField("user_id", id).Info("user updated")

	d.refetch(ctx)
	d.notifier.Toast(ToastUpdated)
	return nil
}

// Remove deletes id after explicit confirmation.
func (d *Directory) Remove(ctx context.Context, id string) error {
	confirmed, err := d.prompter.Confirm(ctx, prompt.Confirmation{
		Title:        "¿Eliminar usuario?",
		Text:         "Esta acción no se puede deshacer.",
		ConfirmLabel: "Sí, eliminar",
		CancelLabel:  "Cancelar",
	})
	if err != nil {
		return err
	}
	if !confirmed {
		d.log.WithField("user_id", id).Debug("delete cancelled")
		return nil
	}

	if err := d.api.Delete(ctx, id); err != nil {
		d.log.WithError(err).WithField("user_id", id).Warn("delete user failed")
		d.notifier.Fail(TitleError, MsgDeleteFailed)
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	d.log.WithField("user_id", id).Info("user deleted")

	d.refetch(ctx)
	d.notifier.Toast(ToastDeleted)
	return nil
}

// refetch resynchronizes after a mutation. Its failure is already reported
// through the error banner and does not undo the mutation's success.
func (d *Directory) refetch(ctx context.Context) {
	_ = d.FetchAll(ctx)
}

func (d *Directory) find(id string) (user.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.state.Users {
		if u.ID == id {
			return u, true
		}
	}
	return user.User{}, false
}
