// Package match - deterministic RNG plumbing.
//
// All randomness in the matcher (input shuffling, randomized initializers)
// flows through here. Goals:
//   - Determinism: same Seed ⇒ identical results across platforms.
//   - Parallel reproducibility: restart r uses a stream derived from
//     (Seed, r), never a shared generator, so worker count cannot change
//     the outcome.
//   - Safety: math/rand.Rand is not goroutine-safe; every restart owns
//     its generator.
package match

import "math/rand"

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style finalizer (Vigna 2014). Consecutive stream
// ids yield decorrelated streams, which is exactly what per-restart
// initializers need.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shuffleRNG returns the generator of the one-per-call input shuffle.
// It owns stream 0; restarts own streams 1..NInit.
//
// Complexity: O(1).
func shuffleRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(deriveSeed(s, 0)))
}

// restartRNG returns the private generator of restart r under base seed.
// Restart streams are independent of NInit and of worker scheduling, so
// growing NInit only appends candidates and parallel runs reproduce
// sequential ones exactly.
//
// Complexity: O(1).
func restartRNG(seed int64, r int) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(deriveSeed(s, uint64(r)+1)))
}

// permRange returns a uniformly random permutation of 0..n-1 drawn from rng.
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := 0; i < n; i++ {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
