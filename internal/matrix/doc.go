// Package matrix expands manifest records into the flattened list of build
// jobs a CI orchestrator fans out. Every record is crossed with the fixed
// architecture set, so the matrix always holds one job per (base image,
// architecture) pair in a deterministic order.
package matrix
