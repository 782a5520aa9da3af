package aaa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"uk.co.dudmesh.apiary/internal/boot"
	"uk.co.dudmesh.apiary/internal/model"
)

func testConfig(enabled bool, authorities string) *boot.Config {
	config := &boot.Config{}
	config.Mgmt.Enabled = enabled
	config.Auth.AuthorityDomains = authorities
	return config
}

func TestAuthorizeRequest(t *testing.T) {
	assert := assert.New(t)

	admin := &model.Session{UID: "jan", Provider: "google", Admin: true}
	user := &model.Session{UID: "sam", Provider: "google"}

	t.Run("admin with feature enabled", func(t *testing.T) {
		service := New(testConfig(true, ""))
		assert.True(service.AuthorizeRequest(admin))
	})

	t.Run("missing session", func(t *testing.T) {
		service := New(testConfig(true, ""))
		assert.False(service.AuthorizeRequest(nil))
	})

	t.Run("non-admin", func(t *testing.T) {
		service := New(testConfig(true, ""))
		assert.False(service.AuthorizeRequest(user))
	})

	t.Run("feature disabled", func(t *testing.T) {
		service := New(testConfig(false, ""))
		assert.False(service.AuthorizeRequest(admin))
	})
}

func TestCanAccess(t *testing.T) {
	assert := assert.New(t)

	service := New(testConfig(true, "asf, google"))
	public := &model.MessageRecord{ID: "a"}
	private := &model.MessageRecord{ID: "b", Private: true}

	t.Run("public mail", func(t *testing.T) {
		session := &model.Session{UID: "jan", Provider: "github", Admin: true}
		assert.True(service.CanAccess(session, public))
	})

	t.Run("private mail needs an authority provider", func(t *testing.T) {
		trusted := &model.Session{UID: "jan", Provider: "google", Admin: true}
		untrusted := &model.Session{UID: "jan", Provider: "github", Admin: true}
		assert.True(service.CanAccess(trusted, private))
		assert.False(service.CanAccess(untrusted, private))
	})

	t.Run("missing session", func(t *testing.T) {
		assert.False(service.CanAccess(nil, public))
	})
}
