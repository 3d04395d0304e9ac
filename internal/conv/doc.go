// Package conv provides checked numeric conversions for values read from
// disk or handed across package boundaries (labels, counts, cluster ids).
//
// Every function returns an error wrapping ErrOutOfRange instead of
// silently truncating.
package conv
