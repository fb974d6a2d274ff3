// Bag and report identifier generation. Identifiers are short upper-case
// tokens, unique with overwhelming probability within a process; duplicates
// entered manually through the action API are accepted silently.

package sim

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// IDWidth is the identifier length in characters.
const IDWidth = 8

// IDSource produces bag/report identifiers. Implementations are not
// required to be thread-safe; a Session calls its source from a single
// logical actor.
type IDSource interface {
	NextID() string
}

// UUIDSource generates identifiers from random UUIDs, truncated to
// IDWidth characters and upper-cased. Stateless; safe to share.
type UUIDSource struct{}

// NextID returns a fresh 8-character upper-case token.
func (UUIDSource) NextID() string {
	return strings.ToUpper(uuid.NewString()[:IDWidth])
}

const idAlphabet = "0123456789ABCDEF"

// SeededIDSource generates identifiers from a caller-supplied RNG,
// producing the same token shape as UUIDSource. Used for deterministic
// sessions and tests.
type SeededIDSource struct {
	rng *rand.Rand
}

// NewSeededIDSource creates a SeededIDSource drawing from rng.
func NewSeededIDSource(rng *rand.Rand) *SeededIDSource {
	if rng == nil {
		panic("NewSeededIDSource: rng must not be nil")
	}
	return &SeededIDSource{rng: rng}
}

// NextID returns the next deterministic 8-character token.
func (s *SeededIDSource) NextID() string {
	var sb strings.Builder
	sb.Grow(IDWidth)
	for i := 0; i < IDWidth; i++ {
		sb.WriteByte(idAlphabet[s.rng.Intn(len(idAlphabet))])
	}
	return sb.String()
}
