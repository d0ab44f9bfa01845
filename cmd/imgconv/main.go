package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ytget/image-converter/internal/codec"
	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
	"github.com/ytget/image-converter/internal/session"
	"github.com/ytget/image-converter/internal/tui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	// Command line flags
	var (
		targetFlag   = flag.String("to", "", "Target format: "+formatNames())
		configFlag   = flag.String("config", "", "Path to config file (default ./"+config.DefaultConfigFileName+" if present)")
		qualityFlag  = flag.Int("quality", 0, "JPEG and WebP quality 1-100 (overrides config)")
		losslessFlag = flag.Bool("webp-lossless", false, "Encode WebP losslessly")
		maxDimFlag   = flag.Int("max-dim", -1, "Downscale images larger than this many pixels, 0 disables")
		dirFlag      = flag.String("dir", "", "Folder to scan for images")
		allFlag      = flag.Bool("all", false, "Include every file when scanning folders")
		logFlag      = flag.String("log", "", "Write diagnostic log to this file")
		versionFlag  = flag.Bool("version", false, "Print version and exit")
	)

	flag.Parse()

	if *versionFlag {
		fmt.Printf("imgconv v%s\n", version)
		return
	}

	if *dirFlag == "" && flag.NArg() == 0 {
		fmt.Println("Image Converter - Convert images between formats")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  imgconv [options] <file or folder>...")
		fmt.Println("  imgconv -dir <folder> -to png")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so diagnostics go to a file or nowhere
	log.SetOutput(io.Discard)
	if *logFlag != "" {
		logFile, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load config
	configPath := *configFlag
	if configPath == "" && platform.FileExists(config.DefaultConfigFileName) {
		configPath = config.DefaultConfigFileName
	}
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "quality":
			cfg.JPEGQuality = *qualityFlag
			cfg.WebPQuality = *qualityFlag
		case "webp-lossless":
			cfg.WebPLossless = *losslessFlag
		case "max-dim":
			cfg.MaxDimension = *maxDimFlag
		case "all":
			cfg.IncludeAll = *allFlag
		}
	})

	target := cfg.TargetFormat()
	if *targetFlag != "" {
		target, err = model.ParseTargetFormat(*targetFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v (supported: %s)\n", err, formatNames())
			os.Exit(1)
		}
	}

	// Get files
	inputs := flag.Args()
	if *dirFlag != "" {
		inputs = append(inputs, *dirFlag)
	}
	paths := platform.ExpandPaths(inputs, cfg.IncludeAll)
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "No files to convert")
		os.Exit(1)
	}

	conv := session.NewSession(codec.NewService(cfg.CodecOptions()))
	if err := conv.SelectFiles(paths); err != nil {
		fmt.Fprintf(os.Stderr, "Error selecting files: %v\n", err)
		os.Exit(1)
	}
	log.Printf("imgconv v%s: %d file(s) to %s", version, len(paths), target)

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Printf("Interrupted, cancelling...")
		cancel()
	}()

	result, err := tui.Run(ctx, conv, target)
	if err != nil && !errors.Is(err, tui.ErrInterrupted) {
		fmt.Fprintf(os.Stderr, "Error during conversion: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Println("Conversion interrupted.")
	}

	printSummary(result)
	for _, entry := range conv.Entries() {
		if entry.Status.IsFailure() {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", entry.Path, entry.LastError)
		}
	}

	switch {
	case err != nil, result.Outcome == session.OutcomeCanceled:
		os.Exit(130)
	case result.Errors > 0:
		os.Exit(2)
	}
}

func printSummary(result session.Result) {
	fmt.Printf("%s: %d converted, %d already in format, %d skipped, %d canceled, %d errors\n",
		result.Outcome, result.Converted, result.AlreadyTarget, result.Skipped, result.Canceled, result.Errors)
}

func formatNames() string {
	formats := model.SupportedTargetFormats()
	names := make([]string, len(formats))
	for i, format := range formats {
		names[i] = format.String()
	}
	return strings.Join(names, ", ")
}
