package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFanOutResult_AllSucceeded(t *testing.T) {
	result := NewFanOutResult(5, nil)

	assert.Equal(t, FanOutAllSucceeded, result.Status)
	assert.Equal(t, 5, result.Total)
	assert.True(t, result.Succeeded())
}

func TestNewFanOutResult_PartialFailure(t *testing.T) {
	result := NewFanOutResult(3, []string{"b"})

	assert.Equal(t, FanOutPartialFailure, result.Status)
	assert.Equal(t, []string{"b"}, result.FailedIDs)
	assert.False(t, result.Succeeded())
}

func TestNewFanOutResult_AllFailed(t *testing.T) {
	result := NewFanOutResult(2, []string{"a", "b"})

	assert.Equal(t, FanOutAllFailed, result.Status)
	assert.False(t, result.Succeeded())
}

func TestNewFanOutResult_ZeroTotal(t *testing.T) {
	result := NewFanOutResult(0, nil)

	assert.Equal(t, FanOutAllSucceeded, result.Status)
	assert.True(t, result.Succeeded())
}
