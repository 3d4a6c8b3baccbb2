package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/config"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/store"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/testutil"
)

type cmdResult struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, args ...string) cmdResult {
	t.Helper()
	cmd := newRootCommand(testutil.NewFixedRunIDGenerator("run-1"))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv(config.EnvConfigPath, path)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "scs-converter", cmd.Name())
	assert.False(t, cmd.HasSubCommands())
	assert.Contains(t, cmd.Long, config.EnvConfigPath)
}

func TestRootCommand_MissingArgsPrintsUsage(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")

	for _, args := range [][]string{nil, {"only-input"}} {
		res := execute(t, args...)
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout+res.stderr, "Usage:")
		assert.Equal(t, ExitSuccess, GetExitCode(res.err))
	}
}

func TestRootCommand_TooManyArgs(t *testing.T) {
	res := execute(t, "a", "b", "c")
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
}

func TestConvert_EndToEnd(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	testutil.WriteTree(t, in, map[string]string{
		"a.scs":      "x -> y;;",
		"bad.scs":    "oops;;",
		"sub/b.scs":  `z => "text";;`,
		"readme.txt": "not a source",
	})

	res := execute(t, in, out)
	require.NoError(t, res.err)

	assert.Equal(t, map[string]string{
		"data.scs": "/* --- " + filepath.Join(in, "a.scs") + " --- */\n" +
			"x | sc_arc_main#1 | y;;\n" +
			"/* --- " + filepath.Join(in, "sub", "b.scs") + " --- */\n" +
			"sc_arc_common_const | sc_arc_main#3 | sc_arc_common#2;;\n" +
			"z | sc_arc_common#2 | \"file://data/link_1\";;\n",
		"data/1": "text",
	}, testutil.ReadTree(t, out))

	assert.Equal(t, "✓ Converted 2 file(s) into "+out+": 3 triple(s), 1 link(s), 1 file(s) skipped with errors\n", res.stdout)
	assert.Contains(t, res.stderr, "bad.scs: syntax error at line 1")
	assert.Contains(t, res.stderr, "run=run-1")
}

func TestConvert_MissingInput(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")

	res := execute(t, filepath.Join(t.TempDir(), "missing"), t.TempDir())
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Contains(t, res.stdout, "Error [E005]")
}

func TestConvert_InvalidConfig(t *testing.T) {
	writeConfig(t, "on_syntax_error: shrug\n")

	res := execute(t, t.TempDir(), t.TempDir())
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Contains(t, res.stdout, "Error [E003]")
}

func TestConvert_IndexMetricsAndJSON(t *testing.T) {
	work := t.TempDir()
	dbPath := filepath.Join(work, "index.db")
	promPath := filepath.Join(work, "scs.prom")
	writeConfig(t, "index_db: "+dbPath+"\nmetrics_file: "+promPath+"\nlog_format: json\nexclude: [\"drafts/**\"]\n")

	in := t.TempDir()
	out := filepath.Join(work, "out")
	testutil.WriteTree(t, in, map[string]string{
		"a.scs":        `a -> [b, "c"];;`,
		"drafts/x.scs": "this is not scs",
	})

	res := execute(t, in, out)
	require.NoError(t, res.err)

	var resp struct {
		Status string  `json:"status"`
		RunID  string  `json:"run_id"`
		Data   Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "run-1", resp.RunID)
	assert.Equal(t, 1, resp.Data.Files)
	assert.Equal(t, 5, resp.Data.Triples)

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()
	run, err := s.ReadRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, 5, run.TripleCount)
	assert.Equal(t, 1, run.LinkCount)
	assert.Equal(t, in, run.InputDir)

	prom, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "scs_converter_triples_emitted_total 5")
}

func TestConvert_KeepPolicy(t *testing.T) {
	writeConfig(t, "on_syntax_error: keep\nmax_depth: 3\n")

	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	testutil.WriteTree(t, in, map[string]string{
		"a.scs": "a -> b;; c -> {{{d}}};;",
	})

	res := execute(t, in, out)
	require.NoError(t, res.err)

	data := testutil.ReadTree(t, out)["data.scs"]
	assert.Contains(t, data, "a | sc_arc_main#1 | b;;")
	assert.Contains(t, res.stderr, "conversion exceeded max depth 3")
}

func TestConvert_NestedContentWarning(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")

	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	testutil.WriteTree(t, in, map[string]string{
		"a.scs": "a -> b;;\nnote -> \"*important*\";;\n",
	})

	res := execute(t, in, out)
	require.NoError(t, res.err)

	assert.Equal(t, map[string]string{
		"data.scs": "/* --- " + filepath.Join(in, "a.scs") + " --- */\n" +
			"a | sc_arc_main#1 | b;;\n" +
			"note | sc_arc_main#2 | \"file://data/link_1\";;\n",
		"data/1": "*important*",
	}, testutil.ReadTree(t, out))
	assert.Equal(t, "✓ Converted 1 file(s) into "+out+": 2 triple(s), 1 link(s), 1 content warning(s)\n", res.stdout)
	assert.Contains(t, res.stderr, "a.scs: syntax error at line 2")
}

func TestConvert_IndexReportsKnownPayloads(t *testing.T) {
	work := t.TempDir()
	writeConfig(t, "index_db: "+filepath.Join(work, "index.db")+"\nlog_format: json\n")

	in := t.TempDir()
	testutil.WriteTree(t, in, map[string]string{
		"a.scs": `a -> "shared", "first";;`,
	})
	require.NoError(t, execute(t, in, filepath.Join(work, "out1")).err)

	testutil.WriteTree(t, in, map[string]string{
		"a.scs": `a -> "shared", "second";;`,
	})
	cmd := newRootCommand(testutil.NewFixedRunIDGenerator("run-2"))
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{in, filepath.Join(work, "out2")})
	require.NoError(t, cmd.Execute())

	var resp struct {
		RunID string  `json:"run_id"`
		Data  Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "run-2", resp.RunID)
	assert.Equal(t, 1, resp.Data.Known)
}
