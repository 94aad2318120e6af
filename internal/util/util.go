// Package util holds small formatting helpers shared by handlers and adapters.
package util

import "fmt"

// FormatBytes formats bytes into human readable format, e.g. "5.0 MB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// SizeLimitDetails describes an upload that is larger than limit.
func SizeLimitDetails(size, limit int64) string {
	return fmt.Sprintf("file is %s, the limit is %s", FormatBytes(size), FormatBytes(limit))
}
