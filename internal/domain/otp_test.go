package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_UnmarshalJSON_String(t *testing.T) {
	var req VerifyOTPRequest
	require.NoError(t, json.Unmarshal([]byte(`{"otp":"123456"}`), &req))
	assert.Equal(t, Code("123456"), req.OTP)
}

func TestCode_UnmarshalJSON_Number(t *testing.T) {
	var req VerifyOTPRequest
	require.NoError(t, json.Unmarshal([]byte(`{"otp":654321}`), &req))
	assert.Equal(t, Code("654321"), req.OTP)
}

func TestCode_UnmarshalJSON_Null(t *testing.T) {
	var req VerifyOTPRequest
	require.NoError(t, json.Unmarshal([]byte(`{"otp":null}`), &req))
	assert.Equal(t, Code(""), req.OTP)
}

func TestCode_UnmarshalJSON_ZeroIsEmpty(t *testing.T) {
	for _, raw := range []string{`{"otp":0}`, `{"otp":0.0}`, `{"otp":-0}`} {
		var req VerifyOTPRequest
		require.NoError(t, json.Unmarshal([]byte(raw), &req), raw)
		assert.Equal(t, Code(""), req.OTP, raw)
	}
}

func TestCode_UnmarshalJSON_Object_ReturnsError(t *testing.T) {
	var req VerifyOTPRequest
	assert.Error(t, json.Unmarshal([]byte(`{"otp":{"a":1}}`), &req))
}

func TestParseEvent(t *testing.T) {
	e, err := ParseEvent("  SCREEN_ON\n")
	require.NoError(t, err)
	assert.Equal(t, EventScreenOn, e)
	assert.True(t, e.IsUnlock())

	e, err = ParseEvent("boot")
	require.NoError(t, err)
	assert.False(t, e.IsUnlock())

	_, err = ParseEvent("shutdown")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestNewTaskSummary_Plural(t *testing.T) {
	assert.Equal(t, "You still have 1 task to complete", NewTaskSummary(1).Body)
	assert.Equal(t, "You still have 3 tasks to complete", NewTaskSummary(3).Body)
	assert.Equal(t, "Task Reminder", NewTaskSummary(3).Title)
}
