package mediasvc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigContentTypeAllowed(t *testing.T) {
	t.Run("EmptyAllowlistAllowsEverything", func(t *testing.T) {
		require.True(t, Config{}.contentTypeAllowed("image/jpeg"))
	})

	t.Run("RestrictedAllowlist", func(t *testing.T) {
		cfg := Config{AllowedContentTypes: []string{"image/jpeg", "image/png"}}

		require.True(t, cfg.contentTypeAllowed("image/jpeg"))
		require.False(t, cfg.contentTypeAllowed("application/pdf"))
	})
}
