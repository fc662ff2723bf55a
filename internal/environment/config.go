package environment

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/andynikk/counterfile/internal/constants"
	"github.com/andynikk/counterfile/internal/constants/errs"
)

type CounterConfigENV struct {
	Dir      string `env:"COUNTER_DIR"`
	File     string `env:"COUNTER_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Verbose  bool   `env:"COUNTER_VERBOSE"`
}

type CounterConfig struct {
	Kind      constants.CounterKind
	StoreFile string
	LogLevel  zerolog.Level
}

// executable is replaced in tests.
var executable = os.Executable

// DefaultDir is the directory one level above the running binary.
func DefaultDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", errors.Wrap(errs.ErrConfig, err.Error())
	}
	exe, err = filepath.Abs(exe)
	if err != nil {
		return "", errors.Wrap(errs.ErrConfig, err.Error())
	}

	return filepath.Join(filepath.Dir(exe), constants.ParentDir), nil
}

// SetConfigCounter builds the configuration of one counter tool.
// An environment variable, when set, wins over its flag.
func SetConfigCounter(kind constants.CounterKind, args []string) (CounterConfig, error) {
	flagSet := flag.NewFlagSet(filepath.Base(kind.FileName), flag.ContinueOnError)

	dirPtr := flagSet.String("d", "", "каталог файла счетчика")
	filePtr := flagSet.String("f", "", "путь к файлу счетчика")
	logLevelPtr := flagSet.String("l", constants.LogLevel, "уровень логирования")
	verbosePtr := flagSet.Bool("v", false, "подробный лог")

	if err := flagSet.Parse(args); err != nil {
		return CounterConfig{}, errors.Wrap(errs.ErrConfig, err.Error())
	}
	if flagSet.NArg() > 0 {
		return CounterConfig{}, errors.Wrapf(errs.ErrConfig, "unexpected arguments %v", flagSet.Args())
	}

	var cfgENV CounterConfigENV
	if err := env.Parse(&cfgENV); err != nil {
		return CounterConfig{}, errors.Wrap(errs.ErrConfig, err.Error())
	}

	dir := cfgENV.Dir
	if _, ok := os.LookupEnv("COUNTER_DIR"); !ok {
		dir = *dirPtr
	}

	file := cfgENV.File
	if _, ok := os.LookupEnv("COUNTER_FILE"); !ok {
		file = *filePtr
	}

	logLevel := cfgENV.LogLevel
	if _, ok := os.LookupEnv("LOG_LEVEL"); !ok {
		logLevel = *logLevelPtr
	}

	verbose := cfgENV.Verbose
	if _, ok := os.LookupEnv("COUNTER_VERBOSE"); !ok {
		verbose = *verbosePtr
	}

	if logLevel == "" {
		logLevel = constants.LogLevel
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return CounterConfig{}, errors.Wrapf(errs.ErrConfig, "log level %q", logLevel)
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	storeFile, err := resolveStoreFile(kind, dir, file)
	if err != nil {
		return CounterConfig{}, err
	}

	return CounterConfig{
		Kind:      kind,
		StoreFile: storeFile,
		LogLevel:  level,
	}, nil
}

func resolveStoreFile(kind constants.CounterKind, dir, file string) (string, error) {
	if filepath.IsAbs(file) {
		return filepath.Clean(file), nil
	}

	if dir == "" {
		defaultDir, err := DefaultDir()
		if err != nil {
			return "", err
		}
		dir = defaultDir
	}

	if file == "" {
		file = kind.FileName
	}

	path, err := filepath.Abs(filepath.Join(dir, file))
	if err != nil {
		return "", errors.Wrap(errs.ErrConfig, err.Error())
	}

	return path, nil
}
