package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litigio-labs/consulta-cli/internal/adapters/driven/config"
)

// execute runs the root command with args against a fresh config dir
// and returns its combined output.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append(args, "--config", dir))
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConfigInitCmd(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "config", "init")

	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to")

	path := filepath.Join(dir, config.FileName)
	require.FileExists(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "base_url")
}

func TestConfigShowCmd(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "base_url = 'https://consultaprocesos.ramajudicial.gov.co:448/api/v2'")
	assert.Contains(t, out, "requests_per_minute = 15")
}

func TestRootCmd_RejectsBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("not = [toml"), 0600))

	_, err := execute(t, dir, "version")

	assert.Error(t, err)
}
