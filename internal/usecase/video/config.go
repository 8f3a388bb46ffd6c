package video

import (
	"regexp"
	"time"
)

const MaxUploadSize = 100 * 1024 * 1024 // 100 MB

// DetailsTTL bounds how long a cached video-details payload stays valid.
const DetailsTTL = 5 * time.Minute

// byte counts travel as numeric strings; both sizes must be positive integers
var sizePattern = regexp.MustCompile(`^[1-9][0-9]*$`)

func IsValidSize(size string) bool {
	return sizePattern.MatchString(size)
}
