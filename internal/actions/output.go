package actions

import (
	"fmt"
	"io"
	"strings"

	"github.com/psumesh/matrixgen/internal/matrix"
)

// matrixOutputName is the output name the consuming workflow captures.
const matrixOutputName = "matrix"

// setOutputMarker is the workflow-command prefix the Actions runner
// recognizes as a named-output declaration.
const setOutputMarker = "::set-output name="

// FormatMatrix renders jobs as the list the consuming workflow was written
// against: single-quoted values, key order os, ver, arch, items joined by
// ", ". An empty matrix renders as []. Field values are rendered verbatim;
// the manifest is a trusted repository-local artifact whose fields carry no
// quotes.
func FormatMatrix(jobs []matrix.Job) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, job := range jobs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "{'os': '%s', 'ver': '%s', 'arch': '%s'}", job.OS, job.Ver, job.Arch)
	}
	b.WriteByte(']')
	return b.String()
}

// WriteMatrixOutput writes the single set-output line declaring jobs as the
// matrix output to w. The line is rendered in full before any byte reaches
// w, so a failing run never leaves a partial declaration behind.
func WriteMatrixOutput(w io.Writer, jobs []matrix.Job) error {
	line := setOutputMarker + matrixOutputName + "::" + FormatMatrix(jobs) + "\n"
	if _, err := io.WriteString(w, line); err != nil {
		return fmt.Errorf("failed to write matrix output: %w", err)
	}
	return nil
}
