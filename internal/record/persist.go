package record

import (
	"encoding/json"
	"log/slog"
	"os"
)

// Save writes the record as indented UTF-8 JSON. HTML escaping is disabled so
// non-ASCII content (author names, symbols like ©) survives as written.
// Returns a success flag; I/O failure is logged, not raised.
func Save(rec *DocumentRecord, path string, logger *slog.Logger) bool {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Create(path)
	if err != nil {
		logger.Error("record.save.create_error", "path", path, "error", err)
		return false
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("record.save.close_error", "path", path, "error", cerr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		logger.Error("record.save.encode_error", "path", path, "error", err)
		return false
	}

	logger.Info("record.save.ok", "path", path)
	return true
}
