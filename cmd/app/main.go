// Spectral image difference detector
// Compares two images through DCT, DWT, SVD and NMF feature maps and
// reports the regions where they differ.

package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"

	"spectral-image-diff/internal/config"
	"spectral-image-diff/internal/core"
	"spectral-image-diff/internal/gui"
	imio "spectral-image-diff/internal/io"
	"spectral-image-diff/internal/report"
)

const (
	AppName    = "Spectral Image Diff"
	AppVersion = "1.0.0"
)

func main() {
	// Parse command line flags
	firstPath := flag.String("i1", "", "First image path (reference)")
	secondPath := flag.String("i2", "", "Second image path")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	outputPath := flag.String("o", "", "Optional path to save the annotated image")
	showGUI := flag.Bool("gui", false, "Show the interactive result panels")
	verbose := flag.Bool("verbose", false, "Include per-transform metrics in the report")
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	flag.Parse()

	// Initialize logger
	logger := initLogger(*debugMode)
	logger.WithFields(logrus.Fields{
		"version":    AppVersion,
		"debug_mode": *debugMode,
	}).Info("Starting " + AppName)

	if *firstPath == "" || *secondPath == "" {
		logger.Error("Both -i1 and -i2 image paths are required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.WithError(err).Error("Invalid configuration")
		os.Exit(1)
	}

	slogger := initComponentLogger(*debugMode)

	if err := run(cfg, slogger, *firstPath, *secondPath, *outputPath, *showGUI, *verbose); err != nil {
		logger.WithError(err).Error("Comparison failed")
		os.Exit(1)
	}

	logger.Info("Done")
}

func run(cfg *config.Config, logger *slog.Logger, firstPath, secondPath, outputPath string, showGUI, verbose bool) error {
	loader := imio.NewImageLoader(logger)

	first, err := loader.LoadGrayscale(firstPath)
	if err != nil {
		return err
	}
	defer first.Close()

	secondRaw, err := loader.LoadGrayscale(secondPath)
	if err != nil {
		return err
	}
	defer secondRaw.Close()

	second, err := loader.AlignPair(first, secondRaw)
	if err != nil {
		return err
	}
	defer second.Close()

	pipeline := core.NewPipeline(cfg, logger)
	result, err := pipeline.Compare(first, second)
	if err != nil {
		return err
	}
	defer result.Close()

	reporter := report.NewReporter(os.Stdout, verbose)
	if err := reporter.Write(result); err != nil {
		return err
	}

	if outputPath != "" {
		if err := loader.SaveImage(result.Annotated, outputPath); err != nil {
			return err
		}
	}

	if showGUI {
		return gui.NewViewer(logger).ShowResult(result)
	}

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}

// initComponentLogger builds the slog logger injected into internal packages
func initComponentLogger(debugMode bool) *slog.Logger {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
