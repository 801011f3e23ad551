package styleset

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arthur-debert/chatstyle/pkg/config"
	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/knadh/koanf/providers/file"
)

// Manager owns the published Set
type Manager struct {
	cfgOpts config.Options
	opts    Options
	metrics *Metrics

	// serialises reloads; readers never take it
	mu      sync.Mutex
	current atomic.Pointer[Set]
}

// NewManager returns a manager with nothing published. metrics may be nil.
func NewManager(cfgOpts config.Options, opts Options, metrics *Metrics) *Manager {
	return &Manager{cfgOpts: cfgOpts, opts: opts, metrics: metrics}
}

// Current returns the published Set, nil before the first successful Reload
func (m *Manager) Current() *Set {
	return m.current.Load()
}

// Reload loads configuration, builds a new Set and publishes it. On failure
// the previous Set stays published and the error is returned.
func (m *Manager) Reload() (*Set, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := time.Now()
	set, err := m.build()
	m.metrics.observe(set, err, time.Since(start))

	if err != nil {
		if prev := m.current.Load(); prev != nil {
			log.Error().Err(err).
				Str("generation", prev.Generation.String()).
				Msg("Reload failed, keeping previous styles")
		}
		return nil, err
	}

	m.current.Store(set)
	log.Info().
		Str("generation", set.Generation.String()).
		Int("styles", len(set.Styles())).
		Dur("took", time.Since(start)).
		Msg("Published styles")
	return set, nil
}

func (m *Manager) build() (*Set, error) {
	cfg, err := config.Load(m.cfgOpts)
	if err != nil {
		return nil, err
	}
	return Build(cfg, m.opts)
}

// Watch reloads whenever the user config file of the current Set changes,
// after the configured debounce. It returns once watching has started and
// stops when ctx is done.
func (m *Manager) Watch(ctx context.Context) error {
	set := m.Current()
	if set == nil {
		return errors.New(errors.ErrInternal, "nothing loaded to watch")
	}
	path := set.Config.Source
	if path == "" {
		return errors.New(errors.ErrConfigLoad, "no config file to watch")
	}
	debounce := set.Config.Watch.Debounce

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	f := file.Provider(path)
	err := f.Watch(func(_ interface{}, err error) {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Config watch error")
			return
		}
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			log.Debug().Str("path", path).Msg("Config changed, reloading")
			_, _ = m.Reload()
		})
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to watch %s", path).WithDetail("path", path)
	}
	log.Info().Str("path", path).Dur("debounce", debounce).Msg("Watching config")

	go func() {
		<-ctx.Done()
		if err := f.Unwatch(); err != nil {
			log.Debug().Err(err).Msg("Unwatch")
		}
		timerMu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()
	return nil
}
