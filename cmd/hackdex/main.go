package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/hackdex/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override hackdex config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	query := flag.String("filter", "", `initial filter, e.g. "status=complete&language=en"`)
	exportPath := flag.String("export", "", "write the filtered catalog to an .html or .xlsx file and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Filter:     *query,
		ExportPath: *exportPath,
		Out:        os.Stdout,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "hackdex: %v\n", err)
		return 1
	}
	return 0
}
