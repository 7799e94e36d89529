package opticore

import (
	"github.com/arkadia-ops/opticore/internal/lp"
	"github.com/arkadia-ops/opticore/internal/network"
	"github.com/arkadia-ops/opticore/internal/transport"
	"github.com/arkadia-ops/opticore/pkg/config"
)

// Session binds a solver configuration to the three Solve* entry points.
// Where a dispatcher exposes a per-request override (transportation's
// Options.MaxIterations), an unset request field is filled from cfg; the LP and
// network families have no such override point today — their iteration
// caps and epsilons are fixed package constants matching the spec's
// stated defaults, so cfg.LP and cfg.Network are consulted only by
// config.Config.Validate, not applied per call (see DESIGN.md).
type Session struct {
	cfg config.SolverConfig
}

// NewSession returns a Session bound to cfg.
func NewSession(cfg config.SolverConfig) *Session {
	return &Session{cfg: cfg}
}

// DefaultSession reproduces the packages' own built-in defaults, so the
// package-level Solve* functions behave identically to calling the
// internal dispatchers directly.
var DefaultSession = NewSession(config.SolverConfig{
	LP: config.LPConfig{
		Epsilon:       1e-9,
		MaxIterations: lp.MaxIterations,
		BigM:          lp.BigM,
	},
	Transport: config.TransportConfig{
		Epsilon:       1e-9,
		MaxIterations: transport.MaxIterations,
	},
	Network: config.NetworkConfig{
		Epsilon: network.Epsilon,
	},
})
