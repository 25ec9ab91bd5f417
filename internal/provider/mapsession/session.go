package mapsession

import (
	"sync"

	"go.uber.org/zap"

	"github.com/uhdiapa/service-guide/internal/domain/apperr"
	"github.com/uhdiapa/service-guide/internal/domain/route"
	"github.com/uhdiapa/service-guide/internal/provider/routes"
)

// Session owns the process-wide routing provider. The provider is built
// exactly once with a fixed feature set (field masks, language, units);
// nothing may change that set after the first load. A failed load is
// terminal and is never retried.
type Session struct {
	cfg  routes.Config
	log  *zap.Logger
	once sync.Once

	mu       sync.RWMutex
	provider route.Provider
	loadErr  error
}

// New creates an unloaded session. The configuration passed here is the
// immutable feature set of the eventual provider.
func New(cfg routes.Config, log *zap.Logger) *Session {
	return &Session{cfg: cfg, log: log}
}

// Load builds the provider. Safe to call from multiple consumers; only the
// first call does work. Returns the terminal load error, if any.
func (s *Session) Load() error {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.cfg.APIKey == "" {
			s.loadErr = apperr.NewConfigurationError("routing provider API key is not configured")
			s.log.Warn("map session load failed", zap.Error(s.loadErr))
			return
		}
		s.provider = routes.NewClient(s.cfg, s.log.Named("routes"))
		s.log.Info("map session ready",
			zap.String("endpoint", s.cfg.Endpoint),
			zap.String("language", s.cfg.LanguageCode),
		)
	})
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Ready reports whether the provider loaded successfully.
func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider != nil
}

// Provider returns the loaded provider. Consumers that ask before Load has
// completed, or after a failed load, get an explicit error instead of a nil
// provider.
func (s *Session) Provider() (route.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.provider == nil {
		return nil, apperr.NewUnavailableError("map session is still loading")
	}
	return s.provider, nil
}
