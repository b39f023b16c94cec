package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashJSON fingerprints a request payload. Values that cannot be encoded as JSON are
// hashed from their Go representation instead.
func HashJSON(payload any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		data = fmt.Appendf(nil, "%#v", payload)
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
