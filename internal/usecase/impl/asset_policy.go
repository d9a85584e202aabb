package impl

import (
	"mime"
	"path"
	"strings"
)

// assetNamespaces are the only first segments an asset key may carry.
// Anything else is denied, including the bare namespace name without a slash.
var assetNamespaces = []string{
	"default/",
	"temp/",
	"users/",
}

// fallbackContentTypes resolves common web asset extensions when the
// platform mime database has no entry.
var fallbackContentTypes = map[string]string{
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".json": "application/json",
}

// Cache lifetime classes keyed by namespace: shipped defaults are immutable
// for a year, temp uploads turn over hourly, user assets daily.
const (
	cacheControlDefault = "public, max-age=31536000"
	cacheControlTemp    = "private, max-age=3600"
	cacheControlUser    = "private, max-age=86400"
)

// ValidAssetPath is the security gate in front of the object store. It
// rejects parent-directory segments and absolute paths, and accepts only keys
// under an allow-listed namespace. Denial is the default.
func ValidAssetPath(assetPath string) bool {
	if strings.Contains(assetPath, "..") || strings.HasPrefix(assetPath, "/") {
		return false
	}

	for _, namespace := range assetNamespaces {
		if strings.HasPrefix(assetPath, namespace) {
			return true
		}
	}

	return false
}

// ContentTypeFor derives a content type from the filename extension, trying
// the platform mime database first and the fixed fallback table second.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}

	if contentType, ok := fallbackContentTypes[ext]; ok {
		return contentType
	}

	return "application/octet-stream"
}

// CacheControlFor selects the cache lifetime class for a validated asset path.
func CacheControlFor(assetPath string) string {
	switch {
	case strings.HasPrefix(assetPath, "default/"):
		return cacheControlDefault
	case strings.HasPrefix(assetPath, "temp/"):
		return cacheControlTemp
	default:
		return cacheControlUser
	}
}
