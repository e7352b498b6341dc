package matrix

import (
	"github.com/psumesh/matrixgen/internal/manifest"
)

// architectures is the fixed set of CPU targets every base image is built
// for. Order is load-bearing: it fixes job order within each record.
var architectures = []string{"x86_64", "arm64"}

// Architectures returns the architecture set in expansion order. Callers
// get their own copy; the set itself never changes at runtime.
func Architectures() []string {
	out := make([]string, len(architectures))
	copy(out, architectures)
	return out
}

// Job describes a single CI build target.
type Job struct {
	OS   string
	Ver  string
	Arch string
}

// Expand builds the full job matrix from the manifest records: the outer
// loop walks records in file order, the inner loop walks the architecture
// set, appending one Job per pair. Pure and deterministic; the result for
// N records always holds N times the architecture count jobs.
func Expand(records []manifest.Record) []Job {
	jobs := make([]Job, 0, len(records)*len(architectures))
	for _, rec := range records {
		for _, arch := range architectures {
			jobs = append(jobs, Job{OS: rec.OS, Ver: rec.Version, Arch: arch})
		}
	}
	return jobs
}
