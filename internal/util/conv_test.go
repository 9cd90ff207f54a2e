package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustParseUint(t *testing.T) {
	assert.Equal(t, uint(42), MustParseUint("42"))
	assert.Equal(t, uint(0), MustParseUint(""))
	assert.Equal(t, uint(0), MustParseUint("abc"))
	assert.Equal(t, uint(0), MustParseUint("-1"))
}

func TestParseOptionalUint(t *testing.T) {
	assert.Nil(t, ParseOptionalUint(""))
	assert.Nil(t, ParseOptionalUint("abc"))
	assert.Nil(t, ParseOptionalUint("-5"))

	got := ParseOptionalUint("7")
	if assert.NotNil(t, got) {
		assert.Equal(t, uint(7), *got)
	}
}
