package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noeia/noeia-backend/internal/utils"
)

func TestFallbackAvatarURL(t *testing.T) {
	url := utils.FallbackAvatarURL("", "Ana Gomez")
	assert.Equal(t, utils.DefaultAvatarBaseURL+"?seed=Ana+Gomez", url)

	// Deterministic: the same name always produces the same URL.
	assert.Equal(t, url, utils.FallbackAvatarURL("", "Ana Gomez"))

	custom := utils.FallbackAvatarURL("https://avatars.internal/svg", "Ana")
	assert.Equal(t, "https://avatars.internal/svg?seed=Ana", custom)
}
