package theme

import (
	"sync"

	"go.uber.org/zap"

	"github.com/gobindapaudel/portfolio/internal/domain/theme"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

// Controller owns the theme State and the persisted preference. It is the
// only writer of either.
type Controller struct {
	storage theme.Storage
	scheme  theme.ColorScheme
	state   *theme.State
	logger  logger.Logger

	mu          sync.Mutex
	mounted     bool
	closed      bool
	unsaved     bool
	unsubscribe func()
}

func NewController(storage theme.Storage, scheme theme.ColorScheme, state *theme.State, log logger.Logger) *Controller {
	if state == nil {
		state = theme.NewState()
	}
	return &Controller{
		storage: storage,
		scheme:  scheme,
		state:   state,
		logger:  log,
	}
}

func (c *Controller) State() *theme.State {
	return c.state
}

// Mount loads the persisted preference, paints it and starts following the
// OS signal. Calling it again is a no-op.
func (c *Controller) Mount() {
	c.mu.Lock()
	if c.mounted || c.closed {
		c.mu.Unlock()
		return
	}
	c.mounted = true

	pref := c.loadPreference()
	c.state.SetPreference(pref)
	c.state.MarkMounted()
	c.apply(pref)
	c.mu.Unlock()

	unsubscribe := c.scheme.Subscribe(c.onSchemeChange)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		unsubscribe()
		return
	}
	c.unsubscribe = unsubscribe
}

// Advance moves to the next preference, persists it and repaints.
func (c *Controller) Advance() theme.Preference {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Preference().Next()
	c.state.SetPreference(next)
	if !c.mounted {
		return next
	}

	if err := c.storage.Set(theme.StorageKey, string(next)); err != nil {
		c.logger.Warn("Theme preference not persisted", zap.String("preference", string(next)), zap.Error(err))
		c.unsaved = true
	} else {
		c.unsaved = false
	}
	c.apply(next)
	return next
}

// Close stops following the OS signal. Safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *Controller) onSchemeChange(prefersDark bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mounted || c.closed {
		return
	}

	pref := c.persistedPreference()
	if pref != theme.System {
		return
	}
	c.state.Apply(theme.Resolve(pref, prefersDark))
}

func (c *Controller) apply(pref theme.Preference) {
	c.state.Apply(theme.Resolve(pref, c.scheme.PrefersDark()))
}

// loadPreference falls back to the default when nothing usable is stored.
func (c *Controller) loadPreference() theme.Preference {
	raw, ok, err := c.storage.Get(theme.StorageKey)
	if err != nil {
		c.logger.Warn("Theme storage unreadable, using default", zap.Error(err))
		return theme.DefaultPreference
	}
	if !ok {
		return theme.DefaultPreference
	}
	pref, valid := theme.ParsePreference(raw)
	if !valid {
		c.logger.Debug("Ignoring unknown stored theme", zap.String("value", raw))
	}
	return pref
}

// persistedPreference re-reads storage. The in-memory value wins when the
// last write failed or storage has nothing usable.
func (c *Controller) persistedPreference() theme.Preference {
	if c.unsaved {
		return c.state.Preference()
	}
	raw, ok, err := c.storage.Get(theme.StorageKey)
	if err != nil || !ok {
		return c.state.Preference()
	}
	pref, _ := theme.ParsePreference(raw)
	return pref
}
