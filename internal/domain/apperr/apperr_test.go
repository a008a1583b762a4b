package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesByKind(t *testing.T) {
	err := NotFound("pet %s not found", "p-1")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidPayload))
	assert.Equal(t, "pet p-1 not found", err.Error())
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("create user: %w", InvalidPayload("email is required"))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindInvalidPayload, kind)
	assert.True(t, errors.Is(err, ErrInvalidPayload))
}

func TestKindOf_PlainError(t *testing.T) {
	_, ok := KindOf(errors.New("disk on fire"))
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "invalid_payload", KindInvalidPayload.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "unauthorized", KindUnauthorized.String())
	assert.Equal(t, "unauthorized", Unauthorized("nope").(*Error).Kind.String())
}
