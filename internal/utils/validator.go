package utils

import (
	"io"
	"net/http"
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	passwordCharset = regexp.MustCompile(`^[a-zA-Z0-9[:punct:]]+$`)
	hasLetter       = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
	usernameUnsafe  = regexp.MustCompile(`[^a-z0-9_.\-]`)
)

// ValidateEmail checks the address format.
func ValidateEmail(email string) (bool, string) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, "Email is required"
	}
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return false, "Invalid email format"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}
	if !passwordCharset.MatchString(password) {
		return false, "Password may only contain letters, digits and symbols"
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return false, "Password must contain at least one letter and one digit"
	}
	return true, ""
}

// UsernameFromEmail 取邮箱本地部分作为用户名基底
func UsernameFromEmail(email string) string {
	local := strings.ToLower(strings.TrimSpace(email))
	if at := strings.Index(local, "@"); at >= 0 {
		local = local[:at]
	}
	local = usernameUnsafe.ReplaceAllString(local, "")
	if local == "" {
		local = "user"
	}
	return local
}

var allowedImageTypes = map[string]map[string]bool{
	"image/jpeg": {".jpg": true, ".jpeg": true},
	"image/png":  {".png": true},
	"image/gif":  {".gif": true},
	"image/webp": {".webp": true},
}

// ValidateImageContent checks if the file content matches the extension.
// The reader is rewound before returning.
func ValidateImageContent(reader io.ReadSeeker, ext string) (bool, string) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return false, "Failed to read file content"
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return false, "Failed to rewind file"
	}

	contentType := http.DetectContentType(buffer[:n])
	if exts, ok := allowedImageTypes[contentType]; ok && exts[strings.ToLower(ext)] {
		return true, contentType
	}
	return false, "File content (" + contentType + ") does not match extension (" + ext + ")"
}
