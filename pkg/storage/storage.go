// Package storage persists uploaded files and returns the URL clients use to
// fetch them.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Store saves an object under key and returns its public URL.
type Store interface {
	Save(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// ObjectKey builds "<folder>/<userID>-<unixnano>-<random><ext>".
func ObjectKey(folder, userID, ext string) string {
	var buf [4]byte
	_, _ = rand.Read(buf[:])
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%s/%s-%d-%s%s", folder, userID, time.Now().UnixNano(), hex.EncodeToString(buf[:]), ext)
}
