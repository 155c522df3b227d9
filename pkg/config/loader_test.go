package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payloadkit/pkg/config"
)

type defaultsConfig struct {
	Addr    string        `env:"CONFIG_TEST_DEFAULT_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"CONFIG_TEST_DEFAULT_TIMEOUT" envDefault:"5s"`
	Pretty  bool          `env:"CONFIG_TEST_DEFAULT_PRETTY" envDefault:"true"`
}

type cachedConfig struct {
	Value string `env:"CONFIG_TEST_CACHED"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value string   `env:"CONFIG_TEST_FILE_VALUE"`
	List  []string `env:"CONFIG_TEST_FILE_LIST" envSeparator:","`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Pretty)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED", "first")
	config.Reset()

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CONFIG_TEST_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.Reset()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_Required(t *testing.T) {
	os.Unsetenv("CONFIG_TEST_REQUIRED")
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("CONFIG_TEST_REQUIRED", "set")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "set", cfg.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("CONFIG_TEST_FILE_VALUE")
	os.Unsetenv("CONFIG_TEST_FILE_LIST")
	t.Cleanup(func() {
		os.Unsetenv("CONFIG_TEST_FILE_VALUE")
		os.Unsetenv("CONFIG_TEST_FILE_LIST")
	})
	config.Reset()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
}
