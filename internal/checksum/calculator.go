package checksum

import (
	"encoding/binary"
	"encoding/hex"
	"sort"

	"github.com/zeebo/blake3"

	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// Algorithm is the prefix written before the hex digest.
const Algorithm = "blake3"

// Calculator is an interface for computing content digests.
type Calculator interface {
	// CalculateFiles computes a digest of a flattened tree. The result does
	// not depend on the order of files.
	CalculateFiles(files []includefolder.File) string
}

// BLAKE3 implements Calculator using BLAKE3-256.
// BLAKE3 is a zero-size type and is safe for concurrent use by multiple goroutines.
type BLAKE3 struct{}

// New creates a new BLAKE3 based calculator.
func New() BLAKE3 {
	return BLAKE3{}
}

// CalculateFiles computes BLAKE3 over the files sorted by path. Each file
// contributes its length-prefixed path, its kind and its length-prefixed bytes.
func (c BLAKE3) CalculateFiles(files []includefolder.File) string {
	sorted := make([]includefolder.File, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	h := blake3.New()
	var n [8]byte
	for _, f := range sorted {
		binary.BigEndian.PutUint64(n[:], uint64(len(f.Path)))
		_, _ = h.Write(n[:])
		_, _ = h.Write([]byte(f.Path))

		var data []byte
		kind := byte(0xff)
		if f.Data != nil {
			data = f.Data.Bytes()
			kind = byte(f.Data.Kind())
		}
		_, _ = h.Write([]byte{kind})
		binary.BigEndian.PutUint64(n[:], uint64(len(data)))
		_, _ = h.Write(n[:])
		_, _ = h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil))
}

var _ Calculator = BLAKE3{}
