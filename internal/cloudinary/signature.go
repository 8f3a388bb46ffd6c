package cloudinary

import (
	"crypto/sha1"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// SignParams implements the media service's request-signing scheme: the
// parameters are serialised as sorted key=value pairs joined by "&", multiple
// values for one key joined by ",", the secret appended, and the SHA-1 digest
// hex encoded. The result is only accepted by the service when replayed
// verbatim alongside the exact same parameters.
func SignParams(params url.Values, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+strings.Join(params[k], ","))
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
