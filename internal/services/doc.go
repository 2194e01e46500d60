// Package services orchestrates a generation run: scan, normalize, synthesize,
// build, expose, digest and render, then write or compare the output file.
package services
