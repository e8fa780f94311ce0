// Command fieldprobe builds gravity fields headlessly: it queries cells, dumps
// rows and runs the probe simulation without a window.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"gravfield/internal/observability"
)

func main() {
	defer observability.Sync()
	if err := newRootCmd().Execute(); err != nil {
		if logger := observability.GetLogger(); logger != nil {
			logger.Debug("command failed", zap.Error(err))
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
