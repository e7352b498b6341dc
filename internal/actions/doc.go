// Package actions renders GitHub Actions workflow commands. The generator's
// entire observable output is one set-output command on stdout, captured by
// the invoking workflow as a named job output and fed into its matrix
// strategy. The rendered shape is a compatibility contract: the consuming
// workflow parses it byte for byte.
package actions
