// Package completion decides, from the line being edited and the cursor
// position, whether completion candidates should be offered and produces
// filename candidates relative to the shell's working directory.
//
// Positions are measured in words rather than characters. The first word
// is the command name, which gets no completion, every later word is
// completed as a path.
package completion
