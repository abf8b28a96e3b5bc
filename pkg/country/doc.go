// Package country loads per-country formatting conventions (date field
// order, currency layout and the list connector word) from a YAML table.
//
// The table must contain a "default" entry, which [Store.Get] returns for
// any country without its own record. [Default] returns the store built
// from the table embedded in this package.
package country
