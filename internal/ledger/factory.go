package ledger

import (
	"fmt"

	"github.com/edsontomaz/gestao-financeira/internal/config"
)

// Open builds the ledger backend selected by configuration. The in-memory
// backend is the default; sqlite is the explicit opt-in for durability
// across restarts.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.LedgerBackend {
	case config.LedgerBackendSQLite:
		store, err := NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := store.RunMigrations(); err != nil {
			return nil, err
		}
		return store, nil
	case config.LedgerBackendMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
	}
}
