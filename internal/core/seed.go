package core

import "hash/fnv"

// DepositSeed derives the local seed for one deposit type from the global
// seed: global + (fnv1a(name) mod 1000). Every Generate call builds its own
// RNG from this value, so deposit types draw from isolated streams and the
// generation order of types cannot change any cloud.
func DepositSeed(global int64, name string) int64 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return global + int64(h.Sum32()%1000)
}
