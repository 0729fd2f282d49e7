package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortVersionAndUserAgent(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	t.Cleanup(func() {
		Version, GitCommit = origVersion, origCommit
	})

	Version = "v1.2.3"
	GitCommit = "0123456789abcdef"

	assert.Equal(t, "v1.2.3", GetVersion())
	assert.Equal(t, "v1.2.3-0123456", GetShortVersion())
	assert.Equal(t, "idahoesports-site/v1.2.3-0123456", UserAgent())
	assert.Equal(t, "v1.2.3", Get().Version)

	GitCommit = "abc"
	assert.Equal(t, "v1.2.3", GetShortVersion())
}
