package errno

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByKind(t *testing.T) {
	err := NotFoundf("video %s not found", "x")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))

	wrapped := fmt.Errorf("fetch: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, NotFound, KindOf(wrapped))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
	assert.Equal(t, "internal", KindOf(nil).String())
}

func TestErrorMessageFallsBackToKind(t *testing.T) {
	assert.Equal(t, "forbidden", ErrForbidden.Error())
	assert.Equal(t, "bad id", InvalidArgumentf("bad %s", "id").Error())
}
