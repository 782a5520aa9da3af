package model

type MessageID string // stable permalink assigned at ingestion, never changes

// MessageRecord is the display copy of an archived email. After ingestion it
// is only ever mutated through the mgmt service.
type MessageRecord struct {
	ID        MessageID `db:"ID" json:"mid"`
	ListID    string    `db:"ListID" json:"list"`
	ListRaw   string    `db:"ListRaw" json:"list_raw"`
	Sender    string    `db:"Sender" json:"from"`
	SenderRaw string    `db:"SenderRaw" json:"from_raw"`
	Subject   string    `db:"Subject" json:"subject"`
	Body      string    `db:"Body" json:"body"`
	Private   bool      `db:"Private" json:"private"`
	Deleted   bool      `db:"Deleted" json:"deleted"`
}
