package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssignableRole(t *testing.T) {
	assert.True(t, AssignableRole(RoleAdmin))
	assert.True(t, AssignableRole(RoleUser))
	assert.False(t, AssignableRole(RoleRider))
	assert.False(t, AssignableRole(Role("manager")))
}

func TestUser_EffectiveRole(t *testing.T) {
	assert.Equal(t, RoleUser, (&User{}).EffectiveRole())
	assert.Equal(t, RoleAdmin, (&User{Role: RoleAdmin}).EffectiveRole())
}

func TestPayment_Stamp(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("EAT", 3*3600))

	var p Payment
	p.Stamp(at)

	assert.Equal(t, time.UTC, p.PaidAt.Location())
	assert.True(t, p.PaidAt.Equal(at))
	assert.Equal(t, "2026-03-04T02:06:07Z", p.PaidAtString)
}
