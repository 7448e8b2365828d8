package configparser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Render struct {
		Engine     string        `env:"CPTEST_RENDER_ENGINE" default:"chrome"`
		SettleWait time.Duration `env:"CPTEST_RENDER_SETTLE_WAIT" default:"5s"`
		Headless   bool          `env:"CPTEST_RENDER_HEADLESS" default:"true"`
	}
	Providers struct {
		Enabled     []string `env:"CPTEST_PROVIDERS_ENABLED" default:"uber,rapido"`
		MaxParallel int64    `env:"CPTEST_PROVIDERS_MAX_PARALLEL" default:"2"`
	}
	Untagged string
}

func TestParseEnv_Defaults(t *testing.T) {
	var cfg sampleConfig
	require.NoError(t, ParseEnv(&cfg))

	require.Equal(t, "chrome", cfg.Render.Engine)
	require.Equal(t, 5*time.Second, cfg.Render.SettleWait)
	require.True(t, cfg.Render.Headless)
	require.Equal(t, []string{"uber", "rapido"}, cfg.Providers.Enabled)
	require.EqualValues(t, 2, cfg.Providers.MaxParallel)
	require.Empty(t, cfg.Untagged)
}

func TestParseEnv_EnvOverridesDefault(t *testing.T) {
	t.Setenv("CPTEST_RENDER_ENGINE", "static")
	t.Setenv("CPTEST_PROVIDERS_ENABLED", " rapido , ")

	var cfg sampleConfig
	require.NoError(t, ParseEnv(&cfg))

	require.Equal(t, "static", cfg.Render.Engine)
	require.Equal(t, []string{"rapido"}, cfg.Providers.Enabled)
}

func TestParseEnv_BadValue(t *testing.T) {
	t.Setenv("CPTEST_RENDER_SETTLE_WAIT", "five seconds")

	var cfg sampleConfig
	require.Error(t, ParseEnv(&cfg))
}

func TestParseEnv_RequiresStructPointer(t *testing.T) {
	require.ErrorIs(t, ParseEnv(sampleConfig{}), ErrNotStructPointer)
}

func TestLoadYamlFile_NestedSectionsAndSubstitution(t *testing.T) {
	keys := []string{"CPYAML_RENDER_ENGINE", "CPYAML_RENDER_SETTLE_WAIT", "CPYAML_SERVER_PORT", "CPYAML_TOKEN_SOURCE"}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
	t.Setenv("CPYAML_TOKEN_SOURCE", "from-env")

	body := `
cpyaml:
  render:
    engine: "static"   # quoted
    settle_wait: 3s # trailing comment
  server:
    port: ${CPYAML_PORT_UNSET:-8081}
  token:
    source: should-not-override
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	require.NoError(t, LoadYamlFile(path))

	require.Equal(t, "static", os.Getenv("CPYAML_RENDER_ENGINE"))
	require.Equal(t, "3s", os.Getenv("CPYAML_RENDER_SETTLE_WAIT"))
	require.Equal(t, "8081", os.Getenv("CPYAML_SERVER_PORT"))
	require.Equal(t, "from-env", os.Getenv("CPYAML_TOKEN_SOURCE"))
}

func TestLoadAndParseYaml_MissingFileFallsBackToDefaults(t *testing.T) {
	var cfg sampleConfig
	require.NoError(t, LoadAndParseYaml(filepath.Join(t.TempDir(), "absent.yaml"), &cfg))
	require.Equal(t, "chrome", cfg.Render.Engine)
}
