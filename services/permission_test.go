package services

import (
	"testing"

	"resort/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanEdit(t *testing.T) {
	assert.True(t, CanEdit(constants.RoleAdmin))
	assert.True(t, CanEdit(constants.RoleStaff))
	assert.False(t, CanEdit(0))
	assert.False(t, CanEdit(99))
}

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(constants.RoleAdmin))
	assert.False(t, CanCancel(constants.RoleStaff))
	assert.False(t, CanCancel(0))
}
