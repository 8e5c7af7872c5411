// Package bench drives an LRU cache with a concurrent, randomized workload and
// reports what happened.
//
// A run spreads Config.Ops operations over Config.Workers goroutines. Each
// worker draws keys uniformly from [0, KeySpace) with its own PCG stream and
// picks Get, Remove or Put according to ReadRatio and RemoveRatio. With a
// fixed Seed the sequence each worker issues is reproducible, although the
// interleaving between workers is not.
package bench
