// Package textops provides small pure string helpers: casing,
// rune-safe reversal and whitespace word counting.
package textops
