package sim

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDSource_TokenShape(t *testing.T) {
	src := UUIDSource{}

	for i := 0; i < 100; i++ {
		id := src.NextID()
		assert.Len(t, id, IDWidth)
		assert.Equal(t, strings.ToUpper(id), id, "tokens are upper-cased")
	}
}

func TestUUIDSource_UniqueInPractice(t *testing.T) {
	src := UUIDSource{}
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id := src.NextID()
		assert.False(t, seen[id], "collision on %s after %d draws", id, i)
		seen[id] = true
	}
}

func TestSeededIDSource_Deterministic(t *testing.T) {
	a := NewSeededIDSource(rand.New(rand.NewSource(42)))
	b := NewSeededIDSource(rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.NextID(), b.NextID())
	}
}

func TestSeededIDSource_TokenShape(t *testing.T) {
	src := NewSeededIDSource(rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		id := src.NextID()
		assert.Len(t, id, IDWidth)
		for _, r := range id {
			assert.Contains(t, idAlphabet, string(r))
		}
	}
}

func TestNewSeededIDSource_NilRNGPanics(t *testing.T) {
	assert.Panics(t, func() { NewSeededIDSource(nil) })
}
