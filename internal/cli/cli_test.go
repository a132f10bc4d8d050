package cli_test

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmdtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numrange/bound"
	"github.com/katalvlaran/numrange/internal/cli"
	"github.com/katalvlaran/numrange/sample"
)

var update = flag.Bool("update", false, "update test files with results")

// TestCLI replays the transcripts under testdata/.
func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	require.NoError(t, err)
	ts.Commands["rangekit"] = cmdtest.InProcessProgram("rangekit", cli.Execute)
	ts.Run(t, *update)
}

// run executes the command tree in-process and returns stdout.
func run(t *testing.T, cfg cli.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCommand(cfg)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func defaultConfig() cli.Config {
	return cli.Config{Type: "int64", Count: 1}
}

// TestSample_Seeded: the same seed prints the same draws.
func TestSample_Seeded(t *testing.T) {
	a, err := run(t, defaultConfig(), "sample", "1", "6", "--count", "20", "--seed", "77")
	require.NoError(t, err)
	b, err := run(t, defaultConfig(), "sample", "1", "6", "--count", "20", "--seed", "77")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	lines := strings.Fields(a)
	require.Len(t, lines, 20)
	for _, l := range lines {
		assert.Contains(t, []string{"1", "2", "3", "4", "5", "6"}, l)
	}
}

// TestSample_ConfigDefaults: Count, Type and Seed come from Config.
func TestSample_ConfigDefaults(t *testing.T) {
	cfg := cli.Config{Type: "int8", Count: 4, Seed: 9}
	a, err := run(t, cfg, "sample", "0", "100")
	require.NoError(t, err)
	require.Len(t, strings.Fields(a), 4)

	b, err := run(t, cfg, "sample", "0", "100")
	require.NoError(t, err)
	assert.Equal(t, a, b, "Config.Seed makes runs reproducible")
}

// TestString_Seeded: strings honour --seed, --digits and the length.
func TestString_Seeded(t *testing.T) {
	a, err := run(t, defaultConfig(), "string", "24", "--seed", "5")
	require.NoError(t, err)
	b, err := run(t, defaultConfig(), "string", "24", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	str := strings.TrimSpace(a)
	require.Len(t, str, 24)
	assert.True(t, sample.IsAlphanumeric(str))

	d, err := run(t, defaultConfig(), "string", "10", "--digits")
	require.NoError(t, err)
	d = strings.TrimSpace(d)
	require.Len(t, d, 10)
	for i := 0; i < len(d); i++ {
		assert.True(t, sample.IsDigit(d[i]))
	}
}

// TestSeq_TypeFromConfig: the width default comes from Config.
func TestSeq_TypeFromConfig(t *testing.T) {
	out, err := run(t, cli.Config{Type: "float32", Count: 1}, "seq", "1", "0", "--step", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "1\n0.5\n0\n", out)
}

// limitWriter accepts n writes and fails every one after that.
type limitWriter struct {
	n     int
	lines []string
}

var errWriterFull = errors.New("writer full")

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(w.lines) == w.n {
		return 0, errWriterFull
	}
	w.lines = append(w.lines, strings.TrimSpace(string(p)))

	return len(p), nil
}

// TestSeq_StreamsWideBounds prints a bound far beyond bound.MaxMaterialize
// element by element, stopping at the first write error.
func TestSeq_StreamsWideBounds(t *testing.T) {
	w := &limitWriter{n: 3}
	root := cli.NewRootCommand(defaultConfig())
	root.SetOut(w)
	root.SetArgs([]string{"seq", "0", "9223372036854775807"})

	err := root.Execute()
	require.ErrorIs(t, err, errWriterFull)
	assert.NotErrorIs(t, err, bound.ErrSpanTooLarge)
	assert.Equal(t, []string{"0", "1", "2"}, w.lines)
}

// TestSeq_InvalidStep reports float steps that cannot be walked.
func TestSeq_InvalidStep(t *testing.T) {
	out, err := run(t, cli.Config{Type: "float64", Count: 1}, "seq", "0", "1", "--step", "NaN")
	require.ErrorIs(t, err, bound.ErrInvalidStep)
	assert.Empty(t, out)
}

// TestLoadConfig reads the RANGEKIT_* environment.
func TestLoadConfig(t *testing.T) {
	t.Setenv("RANGEKIT_TYPE", "int16")
	t.Setenv("RANGEKIT_COUNT", "3")
	t.Setenv("RANGEKIT_SEED", "12")

	cfg, err := cli.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cli.Config{Type: "int16", Count: 3, Seed: 12}, cfg)
}

// TestLoadConfig_Defaults applies envDefault tags.
func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"RANGEKIT_TYPE", "RANGEKIT_COUNT", "RANGEKIT_SEED"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := cli.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

// TestLoadConfig_Invalid reports malformed values.
func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("RANGEKIT_COUNT", "many")

	_, err := cli.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
