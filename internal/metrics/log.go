package metrics

import (
	"sutext.github.io/bithelper/xlog"
)

// Log writes every counter of r at info level, one record per counter.
func Log(r *Registry, l *xlog.Logger) {
	snapshot := r.Snapshot()
	for _, name := range r.Names() {
		l.Info("counter", xlog.String("name", name), xlog.Uint64("count", snapshot[name]))
	}
}
