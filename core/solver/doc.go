package solver

// Package solver implements extraction-order search for open-pit block
// models. The genetic scheduler evolves precedence-repaired permutations
// toward maximum discounted value; the baseline scheduler draws a random
// topological order as a reference point.
