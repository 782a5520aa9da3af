package mgmt

import (
	"errors"
	"fmt"

	"uk.co.dudmesh.apiary/internal/model"
)

type Store interface {
	GetMessage(id model.MessageID) (*model.MessageRecord, error)
	PutMessage(email *model.MessageRecord) error
	GetSource(id model.MessageID) (*model.SourceShadow, error)
	PutSource(source *model.SourceShadow) error
	AppendAudit(entry *model.AuditEntry) error
}

type AccessGate interface {
	CanAccess(session *model.Session, email *model.MessageRecord) bool
}

type service struct {
	store Store
	gate  AccessGate
}

func New(store Store, gate AccessGate) *service {
	return &service{store, gate}
}

// DeleteMessages hides the given emails from the archives, strictly in the
// order supplied so audit rows pair one to one with the mutations. Emails
// that do not exist, or that the requester may not touch, are skipped without
// error. Returns the number of emails removed; re-deleting an already hidden
// email still counts.
func (s *service) DeleteMessages(session *model.Session, ids []model.MessageID) (int, error) {
	count := 0
	for _, id := range ids {
		email, err := s.store.GetMessage(id)
		if err != nil {
			if errors.Is(err, model.ErrorMessageNotFound) {
				continue
			}
			return count, fmt.Errorf("fetching email %s: %w", id, err)
		}
		if !s.gate.CanAccess(session, email) {
			continue
		}

		email.Deleted = true
		if err := s.store.PutMessage(email); err != nil {
			return count, fmt.Errorf("storing email %s: %w", id, err)
		}

		entry := &model.AuditEntry{
			Action: model.AuditActionDelete,
			Remote: session.Remote,
			Author: session.Author(),
			Target: id,
			ListID: email.ListRaw,
			Log:    fmt.Sprintf("Removed email %s from %s archives", id, email.ListRaw),
		}
		if err := s.store.AppendAudit(entry); err != nil {
			return count, fmt.Errorf("appending audit entry for %s: %w", id, err)
		}
		count++
	}
	return count, nil
}

// EditMessage rewrites an email in place, preserving its id and deleted flag.
// The raw source cannot be edited, so an existing source shadow is marked
// deleted instead. Exactly one edit audit row is appended, recording both the
// origin and the new list id.
func (s *service) EditMessage(session *model.Session, id model.MessageID, params *model.EditParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	newList := model.NormalizeListID(*params.List)

	email, err := s.store.GetMessage(id)
	if err != nil {
		if errors.Is(err, model.ErrorMessageNotFound) {
			return model.ErrorMessageNotFound
		}
		return fmt.Errorf("fetching email %s: %w", id, err)
	}
	if !s.gate.CanAccess(session, email) {
		return model.ErrorMessageNotFound
	}

	originList := email.ListRaw
	email.Sender = *params.From
	email.SenderRaw = *params.From
	email.Subject = *params.Subject
	email.Private = params.Private
	email.Body = *params.Body
	email.ListID = newList
	email.ListRaw = newList
	if err := s.store.PutMessage(email); err != nil {
		return fmt.Errorf("storing email %s: %w", id, err)
	}

	if err := s.retireSource(id); err != nil {
		return err
	}

	entry := &model.AuditEntry{
		Action: model.AuditActionEdit,
		Remote: session.Remote,
		Author: session.Author(),
		Target: id,
		ListID: originList,
		Log:    fmt.Sprintf("Edited email %s from %s archives (%s -> %s)", id, originList, originList, newList),
	}
	if err := s.store.AppendAudit(entry); err != nil {
		return fmt.Errorf("appending audit entry for %s: %w", id, err)
	}

	return nil
}

func (s *service) retireSource(id model.MessageID) error {
	source, err := s.store.GetSource(id)
	if err != nil {
		// an email may exist with no raw shadow
		if errors.Is(err, model.ErrorSourceNotFound) {
			return nil
		}
		return fmt.Errorf("fetching source %s: %w", id, err)
	}

	source.Deleted = true
	if err := s.store.PutSource(source); err != nil {
		return fmt.Errorf("storing source %s: %w", id, err)
	}
	return nil
}
