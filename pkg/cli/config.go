package cli

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Fepozopo/swtdetect/pkg/swt"
)

// Config holds pipeline-constant overrides read from the environment
// (and, if present, a .env file). Unset variables keep the package
// defaults baked into pkg/swt.
type Config struct {
	LogFormat    string // SWT_LOG_FORMAT: "json" or "text" (default)
	LogLevel     string // SWT_LOG_LEVEL: logrus level name (default "info")
	AngleStrict  bool   // SWT_ANGLE_STRICT: use swt.AngleStrict instead of the sentinel default
	EmitImage    bool   // SWT_EMIT_IMAGE (loaded, but the detect command always requests the annotated image)
	ReportTiming bool   // SWT_REPORT_TIMING
}

// LoadConfig loads a .env file from the working directory, ignoring a
// missing file, and reads overrides from the environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	cfg := Config{
		LogFormat: envOr("SWT_LOG_FORMAT", "text"),
		LogLevel:  envOr("SWT_LOG_LEVEL", "info"),
	}
	cfg.AngleStrict = envBool("SWT_ANGLE_STRICT")
	cfg.EmitImage = envBool("SWT_EMIT_IMAGE")
	cfg.ReportTiming = envBool("SWT_REPORT_TIMING")
	return cfg
}

// AngleMode returns the swt.AngleMode this config selects.
func (c Config) AngleMode() swt.AngleMode {
	if c.AngleStrict {
		return swt.AngleStrict
	}
	return swt.AngleSentinel
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return v
}
