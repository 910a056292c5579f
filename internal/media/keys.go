package media

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// KeyPrefix is the mandatory prefix of every storage key. The signed-URL
// proxy rejects keys outside it.
const KeyPrefix = "uploads/"

// UniqueFileName generates a collision-resistant filename from the original
// name: "<unix millis>-<random>.<ext>". The random part is a UUIDv4 with the
// dashes stripped, which makes collisions within the same millisecond
// practically impossible. fallbackExt is used when the original name carries
// no extension.
func UniqueFileName(originalName, fallbackExt string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(originalName), "."))
	if ext == "" {
		ext = fallbackExt
	}
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), random, ext)
}

// buildKey places a generated filename under the closed entity/media segment
// mapping: "uploads/<entity>s/<type>s/<filename>".
func buildKey(entityType EntityType, mediaType Type, fileName string) string {
	return KeyPrefix + entitySegments[entityType] + "/" + typeSegments[mediaType] + "/" + fileName
}
