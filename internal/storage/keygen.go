package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// FileKey builds the storage key for an uploaded document:
// folder/<timestamp>-<random>.<ext>. The timestamp is RFC3339 with ':'
// and '.' replaced so the key stays URL- and filesystem-safe. Pure
// function apart from the clock and randomness; collisions are possible
// in principle but the timestamp+token combination makes them
// negligible in practice.
func FileKey(folder, originalName string) string {
	timestamp := strings.NewReplacer(":", "-", ".", "-").Replace(
		time.Now().UTC().Format("2006-01-02T15:04:05.000Z"))

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	if ext == "" {
		ext = "bin"
	}

	return fmt.Sprintf("%s/%s-%s.%s", folder, timestamp, randomToken(6), ext)
}

func randomToken(length int) string {
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())[:length]
	}
	return hex.EncodeToString(bytes)[:length]
}
