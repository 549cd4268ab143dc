// Package iconpad normalizes transparent-background icons onto square canvases.
//
// The visible content of an image is located through its alpha channel,
// cropped, and pasted unscaled onto the center of a fresh transparent square
// whose side is derived from the content's longest edge plus a padding ratio.
// Every step works in memory and returns new images; the package performs no
// file I/O, which keeps it safe to call concurrently across a batch.
package iconpad
