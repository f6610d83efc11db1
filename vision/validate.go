package vision

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// maxImagePayload bounds base64 payload size (~10MB) to cap upstream cost.
const maxImagePayload = 10 * 1024 * 1024

var (
	dataURLRe = regexp.MustCompile(`(?i)^data:image/(jpeg|jpg|png|gif|webp);base64,`)
	httpsRe   = regexp.MustCompile(`(?i)^https://`)
)

// ErrInvalidImage means the input was rejected before any upstream call:
// not a recognized image data URL or HTTPS URL, or over the size cap.
var ErrInvalidImage = errors.New("vision: invalid image input")

// ValidateImageInput accepts a base64 image data URL or an HTTPS URL.
// Validation runs before any network call; oversized or malformed input is
// never sent upstream.
func ValidateImageInput(image string) error {
	if image == "" {
		return ErrInvalidImage
	}
	isDataURL := dataURLRe.MatchString(image)
	if !isDataURL && !httpsRe.MatchString(image) {
		return ErrInvalidImage
	}
	if isDataURL && len(image) > maxImagePayload {
		return fmt.Errorf("%w: payload exceeds size limit", ErrInvalidImage)
	}
	return nil
}

// DecodeDataURL splits a base64 image data URL into its format ("jpeg",
// "png", ...) and raw bytes.
func DecodeDataURL(image string) (string, []byte, error) {
	m := dataURLRe.FindStringSubmatch(image)
	if m == nil {
		return "", nil, ErrInvalidImage
	}
	data, err := base64.StdEncoding.DecodeString(image[len(m[0]):])
	if err != nil {
		return "", nil, fmt.Errorf("%w: bad base64 payload", ErrInvalidImage)
	}
	format := strings.ToLower(m[1])
	if format == "jpg" {
		format = "jpeg"
	}
	return format, data, nil
}
