package archivestore

import (
	"database/sql"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"uk.co.dudmesh.apiary/internal/boot"
	"uk.co.dudmesh.apiary/internal/model"
)

type archivestore struct {
	db *sqlx.DB
}

func New(config *boot.Config) (*archivestore, error) {
	dbName := path.Join(config.DataDirectory(), "archive.db")

	db, err := sqlx.Connect("sqlite3", "file:"+dbName)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &archivestore{db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return store, nil
}

func (s *archivestore) Close() error {
	return s.db.Close()
}

func (s *archivestore) createTables() error {
	_, err := s.db.Exec(`create table if not exists messages(
		ID        text not null primary key,
		ListID    text not null,
		ListRaw   text not null,
		Sender    text not null,
		SenderRaw text not null,
		Subject   text not null,
		Body      text not null,
		Private   boolean not null default false,
		Deleted   boolean not null default false
	)`)
	if err != nil {
		return fmt.Errorf("creating messages table: %w", err)
	}

	_, err = s.db.Exec(`create table if not exists sources(
		ID      text not null primary key,
		Message text not null,
		Deleted boolean not null default false
	)`)
	if err != nil {
		return fmt.Errorf("creating sources table: %w", err)
	}

	_, err = s.db.Exec(`create table if not exists auditlog(
		ID     text not null primary key,
		Date   text not null,
		Action text not null,
		Remote text not null,
		Author text not null,
		Target text not null,
		ListID text not null,
		Log    text not null
	)`)
	if err != nil {
		return fmt.Errorf("creating auditlog table: %w", err)
	}

	return nil
}

func (s *archivestore) GetMessage(id model.MessageID) (*model.MessageRecord, error) {
	email := &model.MessageRecord{}
	err := s.db.Get(email, `select * from messages where ID = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorMessageNotFound
		}
		return nil, fmt.Errorf("fetching email: %w", err)
	}
	return email, nil
}

func (s *archivestore) PutMessage(email *model.MessageRecord) error {
	res, err := s.db.NamedExec(`insert or replace into messages
		(ID, ListID, ListRaw, Sender, SenderRaw, Subject, Body, Private, Deleted)
		values(:ID, :ListID, :ListRaw, :Sender, :SenderRaw, :Subject, :Body, :Private, :Deleted)`, email)

	if err != nil {
		return fmt.Errorf("storing email: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	return nil
}

func (s *archivestore) GetSource(id model.MessageID) (*model.SourceShadow, error) {
	source := &model.SourceShadow{}
	err := s.db.Get(source, `select * from sources where ID = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorSourceNotFound
		}
		return nil, fmt.Errorf("fetching source: %w", err)
	}
	return source, nil
}

func (s *archivestore) PutSource(source *model.SourceShadow) error {
	res, err := s.db.NamedExec(`insert or replace into sources
		(ID, Message, Deleted)
		values(:ID, :Message, :Deleted)`, source)

	if err != nil {
		return fmt.Errorf("storing source: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	return nil
}

// AppendAudit stamps the entry with a fresh id and a UTC timestamp and
// persists it. Failures propagate to the caller; the audit trail is a
// compliance requirement and must never be dropped silently.
func (s *archivestore) AppendAudit(entry *model.AuditEntry) error {
	entry.ID = model.CreateID()
	entry.Date = time.Now().UTC().Format(model.AuditDateFormat)

	res, err := s.db.NamedExec(`insert into auditlog
		(ID, Date, Action, Remote, Author, Target, ListID, Log)
		values(:ID, :Date, :Action, :Remote, :Author, :Target, :ListID, :Log)`, entry)

	if err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	return nil
}

// AuditEntries returns the audit rows for one target in append order.
func (s *archivestore) AuditEntries(target model.MessageID) ([]model.AuditEntry, error) {
	entries := []model.AuditEntry{}
	err := s.db.Select(&entries, `select * from auditlog where Target = ? order by rowid`, target)
	if err != nil {
		return nil, fmt.Errorf("fetching audit entries: %w", err)
	}
	return entries, nil
}
