package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	task := NewTask("write tests", "cover the domain package", true)

	assert.Zero(t, task.ID)
	assert.False(t, task.IsPersisted())
	assert.Equal(t, "write tests", task.Title)
	assert.Equal(t, "cover the domain package", task.Description)
	assert.True(t, task.Completed)
}

func TestTask_IsPersisted(t *testing.T) {
	t.Parallel()

	task := NewTask("", "", false)
	assert.False(t, task.IsPersisted())

	task.ID = 7
	assert.True(t, task.IsPersisted())
}
