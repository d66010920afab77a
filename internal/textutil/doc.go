// Package textutil provides text normalization shared by the extraction and
// merge paths: wiki artifact cleanup, date and runtime canonicalization,
// URL-safe slugs, and case folding for duplicate-detection keys.
//
// All functions are pure. Normalizers return their input unchanged (trimmed)
// when it does not match a known format, so callers never lose data they
// could have preserved.
package textutil
