package idgen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureID(t *testing.T) {
	pattern := regexp.MustCompile(`^err_[0-9a-z]{16}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := GenerateSecureID("err", 16)
		require.NoError(t, err)
		assert.Regexp(t, pattern, id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 100)
}
