package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/dangle into a temporary directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "dangle"
	if runtime.GOOS == "windows" {
		binName = "dangle.exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	// go test runs from test/e2e; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/dangle")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build dangle: %v", err)
	}
	return binPath
}

// run executes the binary and returns stdout, stderr and the exit code.
func run(t *testing.T, binPath string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(binPath, args...)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failed to run %v: %v", args, err)
		}
		code = exitErr.ExitCode()
	}
	return stdout.String(), stderr.String(), code
}

// TestCLI_E2E verifies the built binary functions correctly
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	binPath := buildBinary(t)

	tests := []struct {
		name       string
		args       []string
		wantStdout string // substring match
		wantStderr string
		wantCode   int
	}{
		{
			name:       "Table",
			args:       []string{"--max-n", "9"},
			wantStdout: "d_angle(n)",
		},
		{
			name:       "OEIS line",
			args:       []string{"--max-n", "9", "--no-table", "--oeis-line"},
			wantStdout: "OEIS data (offset 1):\n1, 0, 7, 0, 13, 0, 19, 0, 37\n",
		},
		{
			name:       "Triples",
			args:       []string{"--list-triples", "3"},
			wantStdout: "Solution triples for n=3 (tol=1e-12): count = 7\n(1, 2, 3)\n",
		},
		{
			name:       "Empty triple list",
			args:       []string{"--list-triples", "2"},
			wantStdout: "count = 0\n",
		},
		{
			name:       "Exact method",
			args:       []string{"--max-n", "7", "--method", "exact", "--csv", "-q"},
			wantStdout: "7,19\n",
		},
		{
			name:       "All methods",
			args:       []string{"--max-n", "9", "--method", "all", "--csv"},
			wantStdout: "9,37\n",
			wantStderr: "All methods agree",
		},
		{
			name:       "Calibration",
			args:       []string{"--calibrate", "--max-n", "9"},
			wantStdout: "Safe tolerance band",
		},
		{
			name:       "Help",
			args:       []string{"--help"},
			wantStderr: "Usage",
		},
		{
			name:       "Version Flag",
			args:       []string{"--version"},
			wantStdout: "dangle",
		},
		{
			name:       "Invalid N Zero",
			args:       []string{"-n", "0"},
			wantStderr: "-n must be a positive integer",
			wantCode:   4,
		},
		{
			name:       "Unknown Method",
			args:       []string{"--method", "rule"},
			wantStderr: "unknown method",
			wantCode:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := run(t, binPath, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstdout:\n%s\nstderr:\n%s", code, tt.wantCode, stdout, stderr)
			}
			if !strings.Contains(stdout, tt.wantStdout) {
				t.Errorf("stdout missing %q:\n%s", tt.wantStdout, stdout)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantStderr, stderr)
			}
		})
	}
}

// TestCLI_CSVLineCount checks that CSV mode prints exactly one line per n.
func TestCLI_CSVLineCount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	binPath := buildBinary(t)

	stdout, stderr, code := run(t, binPath, "--max-n", "5", "--csv")
	if code != 0 {
		t.Fatalf("exit code = %d\nstderr:\n%s", code, stderr)
	}
	if stdout != "1,1\n2,0\n3,7\n4,0\n5,13\n" {
		t.Errorf("stdout = %q, want five n,value lines", stdout)
	}
}

// TestCLI_Files checks the b-file, export and metrics outputs.
func TestCLI_Files(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	binPath := buildBinary(t)
	dir := t.TempDir()
	bfile := filepath.Join(dir, "b.txt")
	report := filepath.Join(dir, "report.yaml")
	metricsFile := filepath.Join(dir, "dangle.prom")

	_, stderr, code := run(t, binPath, "--max-n", "5", "--no-table", "-q",
		"--bfile", bfile, "--export", report, "--metrics-file", metricsFile, "--list-triples", "3")
	if code != 0 {
		t.Fatalf("exit code = %d\nstderr:\n%s", code, stderr)
	}

	checks := map[string]string{
		bfile:       "1 1\n2 0\n3 7\n4 0\n5 13\n",
		report:      "shape: 1,1,1",
		metricsFile: `dangle_calculations_total{method="trig"}`,
	}
	for path, want := range checks {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("read %s: %v", path, err)
			continue
		}
		if !strings.Contains(string(data), want) {
			t.Errorf("%s should contain %q:\n%s", filepath.Base(path), want, data)
		}
	}
}
