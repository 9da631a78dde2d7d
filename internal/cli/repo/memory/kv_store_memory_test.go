package memory

import (
	"testing"

	"RegistryAdmin/internal/cli/repo"

	"github.com/stretchr/testify/assert"
)

func TestStore_Roundtrip(t *testing.T) {
	s := NewStore()
	_, err := s.Get("session")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	assert.NoError(t, s.Set("session", "tok"))
	v, err := s.Get("session")
	assert.NoError(t, err)
	assert.Equal(t, "tok", v)

	assert.NoError(t, s.Delete("session"))
	_, err = s.Get("session")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
