package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and exercises the main user flows.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "padiccalc"
	if runtime.GOOS == "windows" {
		binName = "padiccalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; the module root
	// is two levels up.
	rootDir := "../.."

	build := exec.Command("go", "build", "-o", binPath, "./cmd/padiccalc")
	build.Dir = rootDir
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build padiccalc: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match
		wantCode int
	}{
		{
			name:     "Inverse scenario",
			args:     []string{"-p", "7", "-prec", "5", "-op", "inv", "-x", "2", "-quiet", "-no-color"},
			wantOut:  "8404",
			wantCode: 0,
		},
		{
			name:     "Series print mode",
			args:     []string{"-p", "7", "-prec", "5", "-op", "add", "-x", "12/7", "-y", "0", "-mode", "series", "-quiet", "-no-color"},
			wantOut:  "5*7^-1 + 1",
			wantCode: 0,
		},
		{
			name:     "All log variants agree",
			args:     []string{"-p", "3", "-prec", "12", "-op", "log", "-x", "4", "-all-variants", "-no-color"},
			wantOut:  "All variants agree",
			wantCode: 0,
		},
		{
			name:     "Divergent exp",
			args:     []string{"-p", "2", "-prec", "10", "-op", "exp", "-x", "2", "-quiet", "-no-color"},
			wantOut:  "",
			wantCode: 5,
		},
		{
			name:     "Composite prime rejected",
			args:     []string{"-p", "9", "-op", "exp", "-x", "7"},
			wantOut:  "",
			wantCode: 1,
		},
		{
			name:     "Version",
			args:     []string{"--version"},
			wantOut:  "padiccalc",
			wantCode: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tc.args...)
			out, err := cmd.CombinedOutput()

			code := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running %v: %v", tc.args, err)
			}
			if code != tc.wantCode {
				t.Errorf("exit code = %d, want %d; output:\n%s", code, tc.wantCode, out)
			}
			if tc.wantOut != "" && !strings.Contains(string(out), tc.wantOut) {
				t.Errorf("output should contain %q:\n%s", tc.wantOut, out)
			}
		})
	}
}
