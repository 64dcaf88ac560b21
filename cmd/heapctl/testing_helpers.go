package main

import (
	"bytes"
	"os"
	"testing"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// resetStressFlags puts the stress command's flag variables into a known
// state so tests do not depend on registration order or earlier cases.
func resetStressFlags() {
	verbose = false
	jsonOut = false
	stressOps = 500
	stressMax = 256
	stressSeed = 1
	stressFit = "first"
	stressAlign = 8
	stressTrim = 4096
	stressLimit = 1 << 20
}
