// cmd/corpus/main.go
// corpus builds the exhibit binaries and writes the manifest the downstream
// analysis toolchain consumes.
//
//	corpus -config corpus.toml -out dist -verify
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"

	"samples/internal/corpus"
	"samples/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "corpus.toml", "Corpus configuration file")
		outputDir  = flag.String("out", "", "Override output directory")
		only       = flag.String("only", "", "Build a single fixture by name")
		verify     = flag.Bool("verify", false, "Verify built artifacts parse as ELF/PE")
		manifest   = flag.String("manifest", "manifest.json", "Manifest file name (written into the output directory)")
	)
	flag.Parse()

	logger, err := logging.New(logging.Config{ToolName: "corpus"})
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Close()

	cfg, err := corpus.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	builder := corpus.NewBuilder(cfg, logger)
	m, err := builder.BuildAll(ctx, *only)
	if err != nil {
		logger.Fatal("Build failed: %v", err)
	}

	if *verify {
		for _, a := range m.Artifacts {
			if err := corpus.VerifyArtifact(a); err != nil {
				logger.Fatal("Verification failed for %s: %v", a.Name, err)
			}
			logger.Info("verified %s", a.Name)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, *manifest)
	if err := m.Write(manifestPath); err != nil {
		logger.Fatal("Failed to write manifest: %v", err)
	}
	logger.Info("corpus build %s complete: %d artifacts, manifest %s",
		m.BuildID, len(m.Artifacts), manifestPath)

	printSummary(m)
}

func printSummary(m *corpus.Manifest) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tTARGET\tSIZE\tSHA256")
	for _, a := range m.Artifacts {
		target := "host"
		if a.GOOS != "" {
			target = a.GOOS + "/" + a.GOARCH
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.16s\n", a.Name, a.Kind, target, a.Size, a.SHA256)
	}
	w.Flush()
}
