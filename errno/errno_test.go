package errno

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersistenceWrapsStoreErrors(t *testing.T) {
	cause := errors.New("connection reset")
	err := Persistence("follow", cause)

	assert.True(t, errors.Is(err, ErrPersistence))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, 500, Code(err))
	assert.Contains(t, err.Error(), "follow")
}

func TestPersistenceKeepsDomainErrors(t *testing.T) {
	err := Persistence("unlike", fmt.Errorf("unlike: %w", ErrNotLiked))

	assert.True(t, errors.Is(err, ErrNotLiked))
	assert.False(t, errors.Is(err, ErrPersistence))
	assert.Equal(t, 400, Code(err))
}

func TestPersistenceNil(t *testing.T) {
	assert.NoError(t, Persistence("noop", nil))
}

func TestCode(t *testing.T) {
	assert.Equal(t, 404, Code(ErrUserNotFound))
	assert.Equal(t, 400, Code(ErrSelfFollow))
	assert.Equal(t, 500, Code(errors.New("boom")))
}
