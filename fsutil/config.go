package fsutil

import (
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/gobeaver/beaver-kit/config"

	"github.com/travisclagrone/tclg/errors"
)

// Config holds the environment configuration read by NewFromEnv.
type Config struct {
	// DirPerm is the octal permission for created directories.
	DirPerm string `env:"TCLG_DIR_PERM,default:0777"`

	// FilePerm is the octal permission for created files.
	FilePerm string `env:"TCLG_FILE_PERM,default:0666"`

	// LogLevel enables debug logging to stderr at the given slog level
	// (DEBUG, INFO, WARN, ERROR). Empty disables logging.
	LogLevel string `env:"TCLG_LOG_LEVEL"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to load configuration")
	}
	return cfg, nil
}

// Options converts the configuration into FS options.
func (c *Config) Options() ([]Option, error) {
	dirPerm, err := parsePerm("TCLG_DIR_PERM", c.DirPerm)
	if err != nil {
		return nil, err
	}
	filePerm, err := parsePerm("TCLG_FILE_PERM", c.FilePerm)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithDirPerm(dirPerm), WithFilePerm(filePerm)}

	if c.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "invalid log level",
				map[string]interface{}{"variable": "TCLG_LOG_LEVEL", "value": c.LogLevel})
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		opts = append(opts, WithLogger(slog.New(handler)))
	}
	return opts, nil
}

// NewFromEnv returns a local FS configured from the environment. Extra
// options are applied after the configured ones.
func NewFromEnv(opts ...Option) (*FS, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	configured, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return Local(append(configured, opts...)...), nil
}

func parsePerm(variable, value string) (fs.FileMode, error) {
	perm, err := strconv.ParseUint(value, 8, 32)
	if err == nil && perm > 0o777 {
		err = strconv.ErrRange
	}
	if err != nil {
		err = errors.Wrapf(err, errors.CodeInvalidInput, "invalid permission bits %q", value)
		return 0, errors.WithContextMap(err, map[string]interface{}{"variable": variable, "value": value})
	}
	return fs.FileMode(perm), nil
}
