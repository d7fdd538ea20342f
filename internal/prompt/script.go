package prompt

import (
	"context"
	"sync"

	"github.com/sudo-init-do/sgu/internal/user"
)

// EditReply is one scripted answer to PromptForEdit.
type EditReply struct {
	Fields user.Fields
	Cancel bool
}

// Script answers prompts from pre-recorded replies and records every notice.
// When the replies run out, confirmations are declined and edits cancelled.
type Script struct {
	mu       sync.Mutex
	confirms []bool
	edits    []EditReply

	Confirmations []Confirmation
	Edited        []user.User
	Notices       []Notice
}

func NewScript() *Script {
	return &Script{}
}

// QueueConfirm queues answers for Confirm.
func (s *Script) QueueConfirm(answers ...bool) *Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirms = append(s.confirms, answers...)
	return s
}

// QueueEdit queues answers for PromptForEdit.
func (s *Script) QueueEdit(replies ...EditReply) *Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edits = append(s.edits, replies...)
	return s
}

func (s *Script) Confirm(ctx context.Context, c Confirmation) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Confirmations = append(s.Confirmations, c)
	if len(s.confirms) == 0 {
		return false, nil
	}
	answer := s.confirms[0]
	s.confirms = s.confirms[1:]
	return answer, nil
}

func (s *Script) PromptForEdit(ctx context.Context, u user.User) (user.Fields, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Edited = append(s.Edited, u)
	if len(s.edits) == 0 {
		return user.Fields{}, false, nil
	}
	reply := s.edits[0]
	s.edits = s.edits[1:]
	if reply.Cancel {
		return user.Fields{}, false, nil
	}
	return reply.Fields, true, nil
}

func (s *Script) Toast(title string) {
	s.notice(Notice{Kind: Success, Title: title})
}

func (s *Script) Warn(title, text string) {
	s.notice(Notice{Kind: Warning, Title: title, Text: text})
}

func (s *Script) Fail(title, text string) {
	s.notice(Notice{Kind: Error, Title: title, Text: text})
}

func (s *Script) notice(n Notice) {
	s.mu.Lock()
	s.Notices = append(s.Notices, n)
	s.mu.Unlock()
}

// Kinds returns the kinds of the recorded notices in order.
func (s *Script) Kinds() []Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]Kind, len(s.Notices))
	for i, n := range s.Notices {
		kinds[i] = n.Kind
	}
	return kinds
}
