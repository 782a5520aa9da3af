package aaa

import (
	"strings"

	"uk.co.dudmesh.apiary/internal/boot"
	"uk.co.dudmesh.apiary/internal/model"
)

type service struct {
	enabled     bool
	authorities []string
}

func New(config *boot.Config) *service {
	authorities := []string{}
	for _, domain := range strings.Split(config.Auth.AuthorityDomains, ",") {
		if domain = strings.TrimSpace(domain); domain != "" {
			authorities = append(authorities, domain)
		}
	}
	return &service{config.Mgmt.Enabled, authorities}
}

// AuthorizeRequest gates the request as a whole: the requester must hold the
// admin credential and the moderation feature must be switched on. Checked
// once, before any document is touched.
func (s *service) AuthorizeRequest(session *model.Session) bool {
	return session != nil && session.Admin && s.enabled
}

// CanAccess decides per document. Private mail is only visible when the
// session's identity provider is on the configured authority list.
func (s *service) CanAccess(session *model.Session, email *model.MessageRecord) bool {
	if session == nil {
		return false
	}
	if !email.Private {
		return true
	}
	for _, domain := range s.authorities {
		if session.Provider == domain {
			return true
		}
	}
	return false
}
