// Package userfile reads and writes users as INI files, one section per
// user:
//
//	[ana]
//	name  = Ana
//	email = a@x.com
//	phone = 123
package userfile

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/ini.v1"

	"github.com/sudo-init-do/sgu/internal/user"
)

// Entry is one section of a users file.
type Entry struct {
	Section string
	Fields  user.Fields
}

// Read parses every named section. Sections with blank fields are reported
// together as a *multierror.Error and the valid ones are still returned. Any
// other error means the file itself could not be loaded.
func Read(source any) ([]Entry, error) {
	cfg, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("load users file: %w", err)
	}

	var (
		entries []Entry
		result  *multierror.Error
	)
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		f := user.Fields{
			Name:  section.Key("name").String(),
			Email: section.Key("email").String(),
			Phone: section.Key("phone").String(),
		}.Trimmed()
		if err := f.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("section %s: %w", section.Name(), err))
			continue
		}
		entries = append(entries, Entry{Section: section.Name(), Fields: f})
	}
	return entries, result.ErrorOrNil()
}

// Write emits users keyed by id.
func Write(w io.Writer, users []user.User) error {
	cfg := ini.Empty()
	for _, u := range users {
		section, err := cfg.NewSection(u.ID)
		if err != nil {
			return err
		}
		for _, kv := range [][2]string{{"name", u.Name}, {"email", u.Email}, {"phone", u.Phone}} {
			if _, err := section.NewKey(kv[0], kv[1]); err != nil {
				return err
			}
		}
	}
	_, err := cfg.WriteTo(w)
	return err
}
