package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "****", Mask("abcd"))
	assert.Equal(t, "****6789", Mask("sk-123456789"))
	assert.Equal(t, "****", Mask("abc"))
	assert.Equal(t, "****-key", Mask("sk-or-v1-long-secret-key"))
}
