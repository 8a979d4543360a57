package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/portalcentro/centrorag/internal/core/domain"
)

type fakeQueryService struct {
	answer string
	err    error
	asked  string
}

func (f *fakeQueryService) Ask(_ context.Context, query string) (string, error) {
	f.asked = query
	return f.answer, f.err
}

type fakeIndexService struct {
	n    int
	err  error
	root string
}

func (f *fakeIndexService) Index(_ context.Context, root string) (int, error) {
	f.root = root
	return f.n, f.err
}

type fakeSyncService struct {
	n    int
	err  error
	root string
}

func (f *fakeSyncService) Sync(_ context.Context, root string) (int, error) {
	f.root = root
	return f.n, f.err
}

type fakeLocaleStore struct {
	locales []domain.Locale
	err     error
	filter  domain.LocaleFilter
}

func (f *fakeLocaleStore) Lookup(_ context.Context, filter domain.LocaleFilter) ([]domain.Locale, error) {
	f.filter = filter
	return f.locales, f.err
}

func (f *fakeLocaleStore) Replace(context.Context, domain.Locale) error { return nil }
func (f *fakeLocaleStore) Close() error                                 { return nil }

// setupTestServices injects fakes for every command service and returns a
// cleanup restoring the lazy-wiring default.
func setupTestServices() func() {
	queryService = &fakeQueryService{answer: "ok"}
	indexService = &fakeIndexService{}
	syncService = &fakeSyncService{}
	localeStore = &fakeLocaleStore{}

	return func() {
		queryService = nil
		indexService = nil
		syncService = nil
		localeStore = nil
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "centrorag", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	assert.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_HasConfigFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	assert.NotNil(t, flag)
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"index", "ask", "sync", "locales", "version"} {
		assert.True(t, names[want], "command %q should be registered", want)
	}
}
