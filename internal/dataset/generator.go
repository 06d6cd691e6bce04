package dataset

import "math/rand"

// Generate produces count synthetic values uniformly drawn from [0, domain).
// The random source is injected so callers control seeding.
func Generate(rng *rand.Rand, count, domain int) Sample {
	sample := make(Sample, count)
	for i := range sample {
		sample[i] = int32(rng.Intn(domain))
	}
	return sample
}
