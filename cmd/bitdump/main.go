// Command bitdump encodes YAML value scripts into the bit-packed format,
// prints the result as hex and checks that every script decodes back to its
// own values.
//
//	bitdump [-config bitdump.yaml] [-level debug] [-backing bool] script.yaml...
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"sutext.github.io/bithelper/internal/metrics"
	"sutext.github.io/bithelper/internal/script"
	"sutext.github.io/bithelper/xlog"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		level      = flag.String("level", "", "log level: debug, info, warn or error")
		backing    = flag.String("backing", "", "override the backing of every script: int8, uint8 or bool")
		parallel   = flag.Int("parallel", 0, "scripts processed at once")
	)
	flag.Parse()

	cfg, err := readConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bitdump:", err)
		os.Exit(2)
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	if *backing != "" {
		cfg.Backing = *backing
	}
	if *parallel > 0 {
		cfg.Parallel = *parallel
	}
	logger := xlog.NewText(cfg.Level())
	if cfg.JSON {
		logger = xlog.NewJSON(cfg.Level())
	}
	xlog.SetDefault(logger)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(cfg, flag.Args(), os.Stdout, logger); err != nil {
		os.Exit(1)
	}
}

// run processes every script concurrently and prints one line per script, in
// argument order. Each goroutine owns its streams. The returned error is the
// first failure; the other scripts are still run and reported.
func run(cfg *config, paths []string, stdout io.Writer, logger *xlog.Logger) error {
	var (
		g        errgroup.Group
		registry metrics.Registry
		results  = make([]*script.Result, len(paths))
	)
	if cfg.Parallel > 0 {
		g.SetLimit(cfg.Parallel)
	}
	for i, path := range paths {
		g.Go(func() error {
			s, err := script.Load(path)
			if err != nil {
				registry.Counter("scripts.failed").Inc()
				logger.Error("load failed", xlog.Path(path), xlog.Err(err))
				return err
			}
			if cfg.Backing != "" {
				s.Backing = cfg.Backing
			}
			res, err := s.Run()
			if res != nil {
				results[i] = res
				registry.Counter("bits." + res.Backing).Add(uint64(res.Bits))
			}
			if err != nil {
				registry.Counter("scripts.failed").Inc()
				logger.Error("script failed", xlog.Path(path), xlog.Backing(s.Backing), xlog.Err(err))
				return err
			}
			registry.Counter("scripts.ok").Inc()
			logger.Info("script ok", xlog.Path(path), xlog.Backing(res.Backing), xlog.Bits(res.Bits))
			return nil
		})
	}
	err := g.Wait()
	for _, res := range results {
		if res != nil {
			fmt.Fprintf(stdout, "%s\t%s\t%d\t%s\n", res.Name, res.Backing, res.Bits, res.Hex)
		}
	}
	if logger.Enabled(xlog.LevelDebug) {
		metrics.Log(&registry, logger)
	}
	return err
}
