// Package tour is a guided walk through a handful of small, self-contained
// Go building blocks, plus the engine that presents them section by section.
//
// The repository is organised as a set of leaf packages, each usable on its
// own, and a presentation layer that strings them together:
//
//   - taxonomy: a tiny animal object model (capability interface + two
//     conforming variants) demonstrating encapsulation and per-variant
//     behavior
//   - wrap: higher-order bracketing of arbitrary callables (before/after
//     hooks around a forwarded call)
//   - compute: small pure functions with typed error taxonomies
//     (recursive factorial, quantity parsing, age classification)
//   - seq: generic collection helpers (map/filter/reduce and friends)
//   - tour: the section registry and sequential console runner
//   - cmd/tour: the CLI entry point
//
// The leaf packages carry the contracts and the tests; the tour packages
// only render what the leaves already guarantee.
//
// Start with cmd/tour and the examples directory for end-to-end usage.
package tour
