package model

type AuditAction string

const (
	AuditActionDelete AuditAction = "delete"
	AuditActionEdit   AuditAction = "edit"
)

// AuditDateFormat is the UTC timestamp layout used in audit rows.
const AuditDateFormat = "2006/01/02 15:04:05"

// AuditEntry is one append-only row of the moderation audit trail.
type AuditEntry struct {
	ID     string      `db:"ID" json:"-"`
	Date   string      `db:"Date" json:"date"`
	Action AuditAction `db:"Action" json:"action"`
	Remote string      `db:"Remote" json:"remote"`
	Author string      `db:"Author" json:"author"`
	Target MessageID   `db:"Target" json:"target"`
	ListID string      `db:"ListID" json:"lid"`
	Log    string      `db:"Log" json:"log"`
}
