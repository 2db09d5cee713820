// Package pfm reads, writes, merges and scores PF float images.
//
// PF is a portable float map variant used to store partial renders: a short text
// header (magic "PF", an optional "#> <iterations>" annotation and "width height scale")
// followed by raw float32 RGB triples. The sign of scale tells the payload byte order,
// negative for little-endian.
//
// Renders of the same scene can be combined with Image.Merge, which keeps a running
// average weighted by the number of sample passes each image represents, and scored
// against a reference with RMSE over BT.709 luminance.
package pfm
