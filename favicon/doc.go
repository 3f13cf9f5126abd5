// Package favicon derives website favicon assets from a single source image.
//
// A run decodes the source once and writes every artifact of a Manifest, in
// order, into an existing output directory. Each artifact is resized from the
// same unmodified source pixels. The first failure aborts the run; artifacts
// written before it stay on disk.
package favicon
