package mapsession_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uhdiapa/service-guide/internal/domain/apperr"
	"github.com/uhdiapa/service-guide/internal/provider/mapsession"
	"github.com/uhdiapa/service-guide/internal/provider/routes"
)

func TestLoadOnce(t *testing.T) {
	s := mapsession.New(routes.Config{APIKey: "test-key"}, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Load())
		}()
	}
	wg.Wait()

	assert.True(t, s.Ready())
	p, err := s.Provider()
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestLoadFailureIsTerminal(t *testing.T) {
	s := mapsession.New(routes.Config{}, zap.NewNop())

	err := s.Load()
	require.Error(t, err)
	assert.Equal(t, apperr.KindConfiguration, apperr.KindOf(err))

	// Repeated loads do not retry and report the same terminal error.
	err = s.Load()
	require.Error(t, err)
	assert.Equal(t, apperr.KindConfiguration, apperr.KindOf(err))

	assert.False(t, s.Ready())
	_, err = s.Provider()
	assert.Equal(t, apperr.KindConfiguration, apperr.KindOf(err))
}

func TestProviderBeforeLoad(t *testing.T) {
	s := mapsession.New(routes.Config{APIKey: "test-key"}, zap.NewNop())

	_, err := s.Provider()
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
}
