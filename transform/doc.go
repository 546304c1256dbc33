// Package transform applies string functions to every string field of a
// struct, recursively. It is typically called from a
// [validate.Normalizer] or to encode a whole payload with [StructRot13].
package transform
