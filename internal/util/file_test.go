package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("image/jpeg"))
	assert.True(t, IsImage("image/png"))
	assert.False(t, IsImage("video/mp4"))
	assert.False(t, IsImage(""))
}

func TestIsVideo(t *testing.T) {
	assert.True(t, IsVideo("video/mp4"))
	assert.True(t, IsVideo("application/x-mpegURL"))
	assert.False(t, IsVideo("image/gif"))
}

func TestValidateMimeType(t *testing.T) {
	// PNG 魔数
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

	mime, err := ValidateMimeType(bytes.NewReader(png), []string{MimeImage})
	assert.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	_, err = ValidateMimeType(bytes.NewReader(png), []string{MimeVideo})
	assert.Error(t, err)
}
