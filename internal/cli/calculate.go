package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/dangle/internal/config"
	"github.com/agbru/dangle/internal/ui"
)

// PrintExecutionConfig displays the run configuration: range, shape,
// method, tolerance and environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	lo, hi := cfg.Range()
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Computing %sd_angle(n)%s for n=%s%d..%d%s on the triangle %s(%s)%s.\n",
		ui.ColorMagenta(), ui.ColorReset(),
		ui.ColorYellow(), lo, hi, ui.ColorReset(),
		ui.ColorCyan(), cfg.Triangle(), ui.ColorReset())
	fmt.Fprintf(out, "Method: %s%s%s, tolerance %s%g%s, %s%d%s worker(s).\n",
		ui.ColorGreen(), cfg.Method, ui.ColorReset(),
		ui.ColorYellow(), cfg.Tolerance, ui.ColorReset(),
		ui.ColorCyan(), cfg.Workers, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}
