package storage

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var keyPattern = regexp.MustCompile(`^idCards/\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}-\d{3}Z-[0-9a-f]{6}\.png$`)

func TestFileKeyFormat(t *testing.T) {
	key := FileKey("idCards", "photo.PNG")

	assert.Regexp(t, keyPattern, key)
	assert.NotContains(t, key, ":")
	assert.True(t, strings.HasPrefix(key, "idCards/"))
}

func TestFileKeyWithoutExtension(t *testing.T) {
	key := FileKey("certifications", "scan")

	assert.True(t, strings.HasSuffix(key, ".bin"))
}

func TestFileKeyUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := FileKey("bankFiles", "statement.pdf")
		assert.False(t, seen[key], "duplicate key generated: %s", key)
		seen[key] = true
	}
}
