package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_Generate(t *testing.T) {
	generator := NewCodeGenerator()

	code, err := generator.Generate()
	require.NoError(t, err)

	assert.Len(t, code, codeLength)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected character %q in code %q", r, code)
	}
}

func TestCodeGenerator_CodesVary(t *testing.T) {
	generator := NewCodeGenerator()

	seen := make(map[string]struct{})
	for range 50 {
		code, err := generator.Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}

	// 50 draws from a 36^6 space collide with negligible probability.
	assert.Greater(t, len(seen), 45)
}
