// filepath: git_shortcuts/run/run.go
package run

import (
	"fmt"
	"os/exec"
	"strings"
)

// Command executes a child process from the given argument vector and
// returns the captured text, echoing it to the user on success. On
// failure the output is not echoed; the returned error carries it.
func Command(name string, args ...string) (string, error) {
	output, err := Quiet(name, args...)
	if err == nil && output != "" {
		fmt.Print(output)
	}
	return output, err
}

// Quiet executes a child process like Command but never echoes the
// output. Callers that post-process the text use this variant.
func Quiet(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		argv := strings.Join(append([]string{name}, args...), " ")
		return string(output), fmt.Errorf("%s failed: %v\n%s", argv, err, output)
	}
	return string(output), nil
}

// LookPath reports whether the named tool resolves on the active search path.
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
