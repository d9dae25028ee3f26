package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/flipcalc/rehab-intelligence/internal/config"
	"github.com/flipcalc/rehab-intelligence/internal/estimate"
	"github.com/flipcalc/rehab-intelligence/internal/server"
	"github.com/flipcalc/rehab-intelligence/internal/store"
	"github.com/flipcalc/rehab-intelligence/pkg/constants"
	"github.com/flipcalc/rehab-intelligence/pkg/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

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

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to property configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "run the HTTP API instead of a one-shot estimate")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flag.Parse()

	if *serve {
		runServer(*serverConfigLocation, *logLevel)
		return
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := output.ValidateFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	input := conf.PropertyInput()
	opts := conf.EstimateOptions()

	estimator := estimate.New(logger, input)
	result := estimator.Calculate(opts)
	items := estimator.LineItems(opts)

	if conf.Store.Path != "" {
		st, err := store.Open(logger, conf.Store.Path)
		if err != nil {
			logger.Fatal("failed to open estimate store",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		defer func() {
			_ = st.Close()
		}()

		record, err := st.Save(input, result)
		if err != nil {
			logger.Fatal("failed to save estimate",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		logger.Info("estimate saved",
			zap.String("op", "main"),
			zap.Uint("id", record.ID),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result, items)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(result, items); err != nil {
			logger.Fatal("failed to encode estimate",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

func runServer(configLocation, logLevelOverride string) {
	serverConf, err := server.LoadConfig(configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration\", \"error\": \"%v\"}\n", err)
		return
	}

	logger, err := initializeLogger(serverConf.Logging, logLevelOverride)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	var st *store.Store
	if serverConf.StorePath != "" {
		st, err = store.Open(logger, serverConf.StorePath)
		if err != nil {
			logger.Fatal("failed to open estimate store",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		defer func() {
			_ = st.Close()
		}()
	}

	handler := server.NewHandler(logger, serverConf.RequestSizeBytes(), version, st)

	logger.Info("starting HTTP server",
		zap.String("op", "main"),
		zap.String("address", serverConf.Address),
	)

	if err := http.ListenAndServe(serverConf.Address, handler); err != nil {
		logger.Fatal("HTTP server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
