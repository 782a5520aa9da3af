package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeListID(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("<dev.example.org>", NormalizeListID("dev@example.org"))
	assert.Equal("<team.sub.example.org>", NormalizeListID("<team@sub.example.org>"))
	assert.Equal("<users.example.org>", NormalizeListID("  users@example.org  "))
	assert.Equal("<announce.example.org>", NormalizeListID("<announce.example.org>"))
	assert.Equal("<>", NormalizeListID(""))
}
