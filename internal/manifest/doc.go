// Package manifest defines the generator's declarative input model: the
// ordered list of supported base images, read from a plain-text file at a
// fixed location relative to the generator's install directory. Each
// manifest line is one <os>:<version> pair; the package owns locating,
// reading, and parsing that file.
package manifest
