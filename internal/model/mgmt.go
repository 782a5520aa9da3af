package model

import "unicode/utf8"

// MgmtRequest is the payload of the administrative endpoint. The singular
// document field is an accepted alias for a one-element documents list.
type MgmtRequest struct {
	Action    string      `json:"action"`
	Document  MessageID   `json:"document"`
	Documents []MessageID `json:"documents"`
	From      *string     `json:"from"`
	Subject   *string     `json:"subject"`
	List      *string     `json:"list"`
	Private   string      `json:"private"`
	Body      *string     `json:"body"`
}

func (r *MgmtRequest) Targets() []MessageID {
	if len(r.Documents) > 0 {
		return r.Documents
	}
	if r.Document != "" {
		return []MessageID{r.Document}
	}
	return nil
}

func (r *MgmtRequest) EditParams() *EditParams {
	return &EditParams{
		From:    r.From,
		Subject: r.Subject,
		List:    r.List,
		Private: r.Private == "yes",
		Body:    r.Body,
	}
}

// EditParams are the replacement fields of an edit. Pointers distinguish a
// field absent from the payload from an empty string.
type EditParams struct {
	From    *string
	Subject *string
	List    *string
	Private bool
	Body    *string
}

// Validate rejects inconsistent edit input so it never pollutes the archive.
// It runs strictly before the first store write.
func (p *EditParams) Validate() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"Author field", p.From},
		{"Subject field", p.Subject},
		{"List ID field", p.List},
		{"Email body", p.Body},
	}
	for _, field := range fields {
		if field.value == nil || !utf8.ValidString(*field.value) {
			return &ValidationError{Field: field.name}
		}
	}
	return nil
}
