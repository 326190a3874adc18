package checksum

import (
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Reader hashes everything read through it.
type Reader struct {
	r      io.Reader
	digest *xxhash.Digest
}

func NewReader(r io.Reader) *Reader {
	digest := xxhash.New()
	return &Reader{r: io.TeeReader(r, digest), digest: digest}
}

func (r *Reader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// Sum returns the hex xxhash64 of the bytes read so far.
func (r *Reader) Sum() string {
	return hex.EncodeToString(r.digest.Sum(nil))
}
