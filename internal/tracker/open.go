package tracker

import (
	"fmt"

	"github.com/pablasso/tempo/internal/config"
	"github.com/pablasso/tempo/internal/task"
)

// OpenStore opens the task store selected by cfg. The returned close func
// releases backend resources and is safe to call once.
func OpenStore(cfg *config.Config) (task.Store, func() error, error) {
	switch cfg.Backend {
	case config.BackendBolt:
		s, err := task.OpenBoltStore(cfg.BoltFile)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.BackendCSV, "":
		s, err := task.OpenCSVStore(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
