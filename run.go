package opticore

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arkadia-ops/opticore/pkg/logger"
	"github.com/arkadia-ops/opticore/pkg/metrics"
)

// run scopes a single solve call: a unique run ID for log correlation,
// the family/method pair metrics are recorded under, and the start time
// used to compute duration at finish.
type run struct {
	family Family
	method string
	start  time.Time
	log    *slog.Logger
}

func startRun(family Family, method string) *run {
	id := uuid.NewString()
	log := logger.WithFamily(string(family)).With("run_id", id, "method", method)
	log.Info("solve started")
	return &run{family: family, method: method, start: time.Now(), log: log}
}

// finish records the outcome of the run: a metrics observation keyed by
// family/method/status, and a structured log line at error level when err
// is non-nil, otherwise at info level (including unsuccessful statuses).
func (r *run) finish(success bool, iterations int, err error) {
	elapsed := time.Since(r.start)
	metrics.Get().RecordSolveOperation(string(r.family), r.method, success, elapsed, iterations)

	if err != nil {
		r.log.Error("solve failed", "error", err, "duration_ms", elapsed.Milliseconds())
		return
	}
	r.log.Info("solve completed",
		"success", success,
		"iterations", iterations,
		"duration_ms", elapsed.Milliseconds(),
	)
}

func recordModelSize(family Family, variables, constraints int) {
	metrics.Get().RecordModelSize(string(family), variables, constraints)
}
