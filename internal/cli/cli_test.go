package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("HOOKS_THEME", "mono")
	t.Setenv("HOOKS_UNKNOWN_ACTIONS", "ignore")
	t.Setenv("HOOKS_LOG_FILE", filepath.Join(t.TempDir(), "hooks.log"))

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestAdd(t *testing.T) {
	code, out, _ := runCLI(t, "add", "milk", "eggs")
	require.Equal(t, 0, code)
	assert.Contains(t, out, " 1. [ ] milk | completed: false")
	assert.Contains(t, out, " 2. [ ] eggs | completed: false")
	assert.Contains(t, out, "added 2")
}

func TestAddUsage(t *testing.T) {
	code, _, errOut := runCLI(t, "add")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "usage")

	code, _, errOut = runCLI(t, "add", "  ")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "empty text")
}

func TestReplay(t *testing.T) {
	p := writeScript(t, "actions.yaml", `
- type: add
  text: milk
- type: remove
  text: milk
- type: add
  text: eggs
`)
	code, out, _ := runCLI(t, "replay", p)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "milk | completed: false")
	assert.Contains(t, out, "eggs | completed: false")
	assert.Contains(t, out, "replayed 3 actions")
}

func TestReplayRejectPolicy(t *testing.T) {
	p := writeScript(t, "actions.json", `[{"type":"add","text":"milk"},{"type":"remove","text":"milk"}]`)
	code, out, errOut := runCLI(t, "replay", "--unknown-actions=reject", p)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "milk | completed: false")
	assert.Contains(t, errOut, "invalid action")
}

func TestReplayMalformedScript(t *testing.T) {
	p := writeScript(t, "bad.json", `[{"text":"milk"}]`)
	code, out, errOut := runCLI(t, "replay", p)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "missing type field")
}

func TestBadFlags(t *testing.T) {
	code, _, errOut := runCLI(t, "add", "--theme=sparkly", "milk")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown theme")

	code, _, _ = runCLI(t, "add", "--unknown-actions=explode", "milk")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "add", "--nope", "milk")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "frobnicate")
	assert.Equal(t, 2, code)
}

func TestHelp(t *testing.T) {
	code, out, _ := runCLI(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "replay")
}
