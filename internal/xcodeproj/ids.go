package xcodeproj

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// idAllocator hands out the 24-character uppercase hex ids the project
// format uses. Ids derive from the artifact name and an allocation
// counter rather than random draws, so regenerating the same project
// yields byte-identical output and clean diffs under version control.
type idAllocator struct {
	seed string
	n    int
}

func newIDAllocator(seed string) *idAllocator {
	return &idAllocator{seed: seed}
}

func (a *idAllocator) next() string {
	sum := sha256.Sum256(fmt.Appendf(nil, "fwkgen:%s:%d", a.seed, a.n))
	a.n++
	return strings.ToUpper(hex.EncodeToString(sum[:12]))
}
