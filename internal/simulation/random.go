package simulation

import (
	"math"
	"math/rand"
)

// Generator produces normal variates from an injectable source.
// A Generator is not safe for concurrent use; each batch owns one.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator with a reproducible sequence for seed.
func NewGenerator(seed int64) *Generator {
	return NewGeneratorFromSource(rand.NewSource(seed))
}

// NewGeneratorFromSource wraps an arbitrary random source.
func NewGeneratorFromSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// StandardNormal returns one N(0,1) draw using the Box-Muller transform.
func (g *Generator) StandardNormal() float64 {
	// Float64 is in [0,1); flipping it keeps u1 away from log(0).
	u1 := 1 - g.rng.Float64()
	u2 := 1 - g.rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// Normal returns a draw from N(mean, stdDev²).
func (g *Generator) Normal(mean, stdDev float64) float64 {
	return mean + stdDev*g.StandardNormal()
}

// CorrelatedPair draws two returns whose innovations have correlation rho.
// The first leg's innovation also drives part of the second leg, so the
// first value is always treated as the equity return.
func (g *Generator) CorrelatedPair(a, b Distribution, rho float64) (float64, float64) {
	z1 := g.StandardNormal()
	z2 := g.StandardNormal()
	first := a.Mean + z1*a.StdDev
	second := b.Mean + (rho*z1+math.Sqrt(1-rho*rho)*z2)*b.StdDev
	return first, second
}

// Seed draws a value suitable for seeding a child generator.
func (g *Generator) Seed() int64 {
	return g.rng.Int63()
}
