package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// renderDigest hashes a spec with its pixel-affecting options. Fields are
// written in a fixed order, NUL separated, so a spec can never collide
// with an option value.
func renderDigest(spec string, opts RenderKeyOpts) string {
	h := sha256.New()
	for _, field := range []string{
		spec,
		strconv.FormatFloat(opts.Size, 'g', -1, 64),
		strconv.Itoa(opts.Padding),
		opts.Font,
		strconv.FormatFloat(opts.FontScale, 'g', -1, 64),
	} {
		h.Write([]byte(field))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
