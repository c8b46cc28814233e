// Package kernel provides the constrained value objects shared across the
// order-taking domain: bounded strings, contact details, identifiers,
// product codes, quantities, and money amounts.
//
// Every type in this package follows the smart-constructor pattern: the
// wrapped primitive is private, the constructor validates the raw input and
// returns an error naming the offending field, and a zero value fails its
// Validate method. A value of one of these types is therefore always valid
// by construction; there is no way to observe an out-of-range instance.
package kernel
