package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "splicer"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "SPLICER"

	mutationsFlagName = "mutations"
	seedFlagName      = "seed"
	outputFlagName    = "output"
	minLenFlagName    = "min-len"
	maxLenFlagName    = "max-len"
	diffFlagName      = "diff"
	showPoolsFlagName = "show-pools"
	dataDirFlagName   = "data-dir"
	outputDirFlagName = "output-dir"
	patternFlagName   = "pattern"
	timeoutFlagName   = "timeout"
	parallelFlagName  = "parallel"
	maxFilesFlagName  = "max-files"
	reportFlagName    = "report"
	logFileFlagName   = "log-file"
	verboseFlagName   = "verbose"

	mutateCountKey    = "mutate.count"
	mutateSeedKey     = "mutate.seed"
	poolMinLenKey     = "pool.min_len"
	poolMaxLenKey     = "pool.max_len"
	batchCountKey     = "batch.count"
	batchSeedKey      = "batch.seed"
	batchDataDirKey   = "batch.data_dir"
	batchOutputDirKey = "batch.output_dir"
	batchPatternKey   = "batch.pattern"
	batchTimeoutKey   = "batch.timeout"
	batchParallelKey  = "batch.parallel"
	batchMaxFilesKey  = "batch.max_files"

	defaultMutateCount    = 16
	defaultMutateSeed     = 42
	defaultPoolMinLen     = 5
	defaultPoolMaxLen     = 200
	defaultBatchCount     = 5
	defaultBatchSeed      = 42
	defaultBatchDataDir   = "data"
	defaultBatchOutputDir = "data/mutated_synthesized"
	defaultBatchPattern   = "synthesized*.rs"
	defaultBatchTimeout   = 30 * time.Second
	defaultBatchParallel  = 1
	defaultBatchMaxFiles  = 0

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".splicer.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func initConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(mutateCountKey, defaultMutateCount)
	viper.SetDefault(mutateSeedKey, defaultMutateSeed)
	viper.SetDefault(poolMinLenKey, defaultPoolMinLen)
	viper.SetDefault(poolMaxLenKey, defaultPoolMaxLen)

	viper.SetDefault(batchCountKey, defaultBatchCount)
	viper.SetDefault(batchSeedKey, defaultBatchSeed)
	viper.SetDefault(batchDataDirKey, defaultBatchDataDir)
	viper.SetDefault(batchOutputDirKey, defaultBatchOutputDir)
	viper.SetDefault(batchPatternKey, defaultBatchPattern)
	viper.SetDefault(batchTimeoutKey, defaultBatchTimeout)
	viper.SetDefault(batchParallelKey, defaultBatchParallel)
	viper.SetDefault(batchMaxFilesKey, defaultBatchMaxFiles)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		// A broken config file falls back to defaults; flags still apply.
		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// numeric slog levels, e.g. -4 for debug
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the default slog logger at a rotating log file.
// Stdout stays free for mutated code.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	// batch children share the log file
	globalLogger = slog.New(handler).With("pid", os.Getpid())
	slog.SetDefault(globalLogger)
}
