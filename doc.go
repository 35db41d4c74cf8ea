// Package stuff packs either a raw machine address or a small auxiliary
// value ("other") into a single fixed-width unsigned integer, so a
// pointer-sized slot can carry extra information without extra memory.
//
// The encoding is driven by a Strategy: a stateless marker type that
// decides how addresses and other values map onto a Backend integer.
// Callers pick a backend width (Word, Uint64 or Uint128), stuff a value
// with StuffAddr or StuffOther, store the resulting integer, and later
// recover the original with Extract.
//
// Extract trusts its input: it is only defined for values produced by
// the same strategy's stuff methods. There is no runtime provenance
// check, since storing one would defeat the compact encoding.
package stuff
