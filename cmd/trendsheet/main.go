package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iwvelando/trendsheet/internal/config"
	"github.com/iwvelando/trendsheet/internal/report"
	"github.com/iwvelando/trendsheet/pkg/constants"
	"github.com/iwvelando/trendsheet/pkg/mls"
	"github.com/iwvelando/trendsheet/pkg/output"
	"github.com/iwvelando/trendsheet/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var loggerConfig zap.Config
	switch format {
	case "console":
		loggerConfig = zap.NewDevelopmentConfig()
		loggerConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		loggerConfig = zap.NewProductionConfig()
		loggerConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		loggerConfig.OutputPaths = []string{loggingConfig.OutputFile}
		loggerConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return loggerConfig.Build()
}

// readMLS loads pasted MLS text from a file, or from stdin when the
// location is "-".
func readMLS(location string) (string, error) {
	if location == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read MLS data from stdin: %v", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(location)
	if err != nil {
		return "", fmt.Errorf("failed to read MLS data at %s: %v", location, err)
	}
	return string(raw), nil
}

func main() {
	// Process command line flags first to get worksheet location
	worksheetLocation := flag.String("config", constants.DefaultWorksheetFile, "path to worksheet file")
	mlsLocation := flag.String("mls", "", "path to tab-separated MLS export, or - for stdin")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the worksheet file to get logging configuration
	worksheet, err := config.LoadWorksheet(*worksheetLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load worksheet at %s\", \"error\": \"%v\"}\n", *worksheetLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(worksheet.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := worksheet.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate the worksheet and display any warnings
	warnings := worksheet.Validate()
	for _, warning := range warnings {
		logger.Warn("Worksheet warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Import MLS data if provided. Only the record count is reported;
	// record contents stay out of the logs.
	var records []mls.Record
	if *mlsLocation != "" {
		raw, err := readMLS(*mlsLocation)
		if err != nil {
			logger.Fatal(err.Error(),
				zap.String("op", "main"),
			)
		}
		records = mls.Parse(raw)
		logger.Info(fmt.Sprintf("imported %d MLS records", len(records)),
			zap.String("op", "main"),
		)
	}

	// Compute the worksheet report.
	result, err := report.Build(logger, worksheet, records)
	if err != nil {
		logger.Fatal("failed to build report",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	}

}
