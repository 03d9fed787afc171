package pgerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, 404, ErrNotFound.StatusCode)
	assert.Equal(t, 400, ErrInvalidReq.StatusCode)
	assert.Equal(t, 409, ErrConflict.StatusCode)
	assert.Equal(t, 500, ErrInternalError.StatusCode)
}

func TestInvalidViolations(t *testing.T) {
	e := NewInvalidViolations([]string{"name is required"})
	assert.Equal(t, CodeInvalidRequest, e.ErrorCode)
	assert.NotNil(t, e.Extras)
	assert.Contains(t, *e.Extras, "violations")

	// the shared sentinel must stay untouched
	assert.Nil(t, ErrInvalidReq.Extras)
}
