package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	DataDir string `json:"data_dir" env:"TEST_SUMO_DATA_DIR"`
	BaseUrl string `json:"base_url" env:"TEST_SUMO_BASE_URL"`
	Delay   string `json:"request_delay"`
}

func writeFile(t *testing.T, path, contents string) {
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func TestSplitExt(t *testing.T) {
	prefix, ext := splitExt("sumo.json5")
	require.Equal(t, "sumo", prefix)
	require.Equal(t, "json5", ext)

	prefix, ext = splitExt("sumo")
	require.Equal(t, "sumo", prefix)
	require.Equal(t, "", ext)
}

func TestReadConfigMergesLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sumo.json5"), `{
		// json5 allows comments
		data_dir: "data",
		base_url: "https://www.sumo.or.jp",
		request_delay: "1s",
	}`)
	writeFile(t, filepath.Join(dir, "sumo.local.json5"), `{ request_delay: "250ms" }`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "sumo.json5"))
	require.NoError(t, err)
	require.Equal(t, testConfig{
		DataDir: "data",
		BaseUrl: "https://www.sumo.or.jp",
		Delay:   "250ms",
	}, cfg)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "sumo.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAppliesEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sumo.json5"), `{ data_dir: "data", base_url: "https://www.sumo.or.jp" }`)
	t.Setenv("TEST_SUMO_DATA_DIR", "/var/lib/sumo")

	cfg, err := Read[testConfig](filepath.Join(dir, "sumo.json5"))
	require.NoError(t, err)
	require.Equal(t, "/var/lib/sumo", cfg.DataDir)
	require.Equal(t, "https://www.sumo.or.jp", cfg.BaseUrl)
}

func TestReadWithoutFile(t *testing.T) {
	t.Setenv("TEST_SUMO_BASE_URL", "http://localhost:8080")

	cfg, err := Read[testConfig](filepath.Join(t.TempDir(), "sumo.json5"))
	require.NoError(t, err)
	require.Equal(t, testConfig{BaseUrl: "http://localhost:8080"}, cfg)
}

func TestReadMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sumo.json5"), `{ data_dir: `)

	_, err := Read[testConfig](filepath.Join(dir, "sumo.json5"))
	require.Error(t, err)
}
