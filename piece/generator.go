package piece

import (
	"fmt"
	"math/rand/v2"
)

// Generator yields the kind of each newly drawn piece.
type Generator interface {
	Next() Kind
}

// RandomGenerator picks each kind uniformly and independently.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator returns a uniform generator driven by src.
func NewRandomGenerator(src rand.Source) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(src)}
}

func (g *RandomGenerator) Next() Kind {
	return Kinds[g.rng.IntN(len(Kinds))]
}

// BagGenerator deals all seven kinds in a shuffled order before reshuffling,
// so no kind waits more than twelve draws.
type BagGenerator struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagGenerator returns a 7-bag generator driven by src.
func NewBagGenerator(src rand.Source) *BagGenerator {
	return &BagGenerator{
		rng: rand.New(src),
		bag: make([]Kind, 0, len(Kinds)),
	}
}

func (g *BagGenerator) Next() Kind {
	if len(g.bag) == 0 {
		g.bag = append(g.bag, Kinds[:]...)
		g.rng.Shuffle(len(g.bag), func(i, j int) {
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		})
	}

	k := g.bag[0]
	g.bag = g.bag[1:]
	return k
}

// SequenceGenerator replays a fixed list of kinds, wrapping around at the end.
type SequenceGenerator struct {
	kinds []Kind
	pos   int
}

// NewSequenceGenerator returns a generator cycling through kinds.
// It panics if kinds is empty or contains None.
func NewSequenceGenerator(kinds ...Kind) *SequenceGenerator {
	if len(kinds) == 0 {
		panic("sequence generator needs at least one kind")
	}
	for _, k := range kinds {
		if !k.Valid() {
			panic(fmt.Sprintf("sequence generator given invalid kind %d", k))
		}
	}
	return &SequenceGenerator{kinds: kinds}
}

func (g *SequenceGenerator) Next() Kind {
	k := g.kinds[g.pos]
	g.pos = (g.pos + 1) % len(g.kinds)
	return k
}

// Randomizer names accepted by NewGenerator.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// NewGenerator builds the named randomizer seeded with seed.
func NewGenerator(name string, seed uint64) (Generator, error) {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	switch name {
	case RandomizerUniform, "":
		return NewRandomGenerator(src), nil
	case RandomizerBag:
		return NewBagGenerator(src), nil
	default:
		return nil, fmt.Errorf("unknown randomizer %q", name)
	}
}
