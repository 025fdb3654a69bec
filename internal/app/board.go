package app

import (
	"github.com/pkg/errors"

	"life-ca/internal/core"
	"life-ca/internal/sims/conway"
)

// NewBoard resolves cfg.Sim in the registry and returns it as an editable board.
func NewBoard(cfg *Config) (*conway.Life, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, errors.Errorf("unknown sim %q (have %v)", cfg.Sim, core.Names())
	}
	opts, err := cfg.SimConfig()
	if err != nil {
		return nil, err
	}
	sim, err := factory(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewBoard] %s", cfg.Sim)
	}
	board, ok := sim.(*conway.Life)
	if !ok {
		return nil, errors.Errorf("sim %q does not support editing", cfg.Sim)
	}
	return board, nil
}
