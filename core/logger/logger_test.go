package logger

import (
	"testing"

	"log/slog"
)

// The package-level loggers must be usable before InitLogger runs:
// packages log through them at import-level call sites and in tests
// that never configure logging.
func TestPackageLoggersUsableWithoutInit(t *testing.T) {
	for name, l := range map[string]*slog.Logger{
		"L": L, "DB": DB, "TG": TG, "MIG": MIG, "TWire": TWire,
	} {
		if l == nil {
			t.Fatalf("logger %s is nil before InitLogger", name)
		}
	}

	// must not panic
	L.Info("logger.check", slog.String("status", "ok"))
	DB.Debug("db.check")
	TWire.Warn("tg.wire.check")

	if Component("db") == nil {
		t.Fatal("Component returned nil before InitLogger")
	}
}
