package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullVersion(t *testing.T) {
	t.Parallel()

	Set("favicongen", "1.2.0", "MIT")

	assert.Equal(t, "1.2.0", Version())
	full := FullVersion()
	assert.Contains(t, full, "favicongen 1.2.0")
	assert.Contains(t, full, "Licensed under the MIT license.")
	assert.NotEmpty(t, GetInfo().Commit)
}
