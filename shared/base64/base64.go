package base64

import "strings"

// GetContentType extracts the MIME type from a data URL such as
// "data:image/png;base64,...". Returns "" when the input is not a data URL.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}
