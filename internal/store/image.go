package store

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// MaxImageBytes caps entry photos at 5MB.
const MaxImageBytes = 5 * 1024 * 1024

// maxDataURILen bounds the encoded form: base64 inflates by 4/3, plus the
// "data:<mime>;base64," prefix.
const maxDataURILen = MaxImageBytes/3*4 + 64

// EncodeImage reads an image file and returns it as a data URI suitable
// for storing on a MoodEntry. Files over MaxImageBytes are rejected.
func EncodeImage(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat image: %w", err)
	}
	if info.Size() > MaxImageBytes {
		return "", ErrImageTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
