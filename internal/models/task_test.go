package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_Next(t *testing.T) {
	assert.Equal(t, TaskStatusInProgress, TaskStatusOpen.Next())
	assert.Equal(t, TaskStatusCompleted, TaskStatusInProgress.Next())
	assert.Equal(t, TaskStatusOpen, TaskStatusCompleted.Next())
	assert.Equal(t, TaskStatusOpen, TaskStatusUrgent.Next())
}

func TestTaskStatus_Valid(t *testing.T) {
	assert.True(t, TaskStatusOpen.Valid())
	assert.True(t, TaskStatusUrgent.Valid())
	assert.False(t, TaskStatus("done").Valid())
}

func TestCounselRole_Valid(t *testing.T) {
	assert.True(t, CounselRoleLead.Valid())
	assert.True(t, CounselRoleSupporting.Valid())
	assert.True(t, CounselRoleSpecialty.Valid())
	assert.False(t, CounselRole("Main Counsel").Valid())
}
