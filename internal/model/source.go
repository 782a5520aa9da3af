package model

// SourceShadow is the raw ingested payload behind a MessageRecord. The raw
// copy is never edited; when the display record changes it is retired by
// flipping Deleted instead. At most one exists per message id.
type SourceShadow struct {
	ID      MessageID `db:"ID" json:"mid"`
	Message string    `db:"Message" json:"message"`
	Deleted bool      `db:"Deleted" json:"deleted"`
}
