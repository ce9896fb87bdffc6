package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setDoctorJSON flips the --json flag var for one test.
func setDoctorJSON(t *testing.T, v bool) {
	t.Helper()
	orig := doctorJSON
	t.Cleanup(func() { doctorJSON = orig })
	doctorJSON = v
}

func TestDoctorJSONOutput(t *testing.T) {
	root := writeProcTree(t)

	saveFlagState(t)
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	procRootFlag = root
	setDoctorJSON(t, true)

	var buf bytes.Buffer
	require.NoError(t, doctorCommand(&buf))

	var out DoctorOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	var cats []string
	total := 0
	for _, cat := range out.Categories {
		cats = append(cats, cat.Name)
		total += len(cat.Results)
	}
	assert.Equal(t, []string{"CONFIG", "PROC", "TERMINAL"}, cats)

	// Every check lands in exactly one summary bucket.
	assert.Equal(t, total, out.Summary.Pass+out.Summary.Warn+out.Summary.Fail)
	assert.Equal(t, out.Summary.AllClear, out.Summary.Warn == 0 && out.Summary.Fail == 0)

	// A healthy fixture tree passes every PROC check.
	for _, cat := range out.Categories {
		if cat.Name != "PROC" {
			continue
		}
		require.Len(t, cat.Results, 5)
		for _, res := range cat.Results {
			assert.Equal(t, "pass", res.Status.String(), "%s: %s", res.Name, res.Message)
		}
	}
}

func TestDoctorTextOutput(t *testing.T) {
	root := writeProcTree(t)

	saveFlagState(t)
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	procRootFlag = root
	setDoctorJSON(t, false)

	var buf bytes.Buffer
	require.NoError(t, doctorCommand(&buf))
	out := buf.String()

	assert.Contains(t, out, "ptop Diagnostic Report")
	assert.Contains(t, out, "CONFIG")
	assert.Contains(t, out, "PROC")
	assert.Contains(t, out, "TERMINAL")
}

func TestDoctorReportsBrokenProcRoot(t *testing.T) {
	saveFlagState(t)
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	procRootFlag = filepath.Join(t.TempDir(), "missing")
	setDoctorJSON(t, true)

	var buf bytes.Buffer
	require.NoError(t, doctorCommand(&buf))

	var out DoctorOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Greater(t, out.Summary.Fail, 0)
	assert.False(t, out.Summary.AllClear)
}

func TestDoctorProcRootResolution(t *testing.T) {
	t.Run("default when nothing set", func(t *testing.T) {
		saveFlagState(t)
		t.Setenv("HOME", t.TempDir())
		chdir(t, t.TempDir())

		assert.Equal(t, "/proc", doctorProcRoot())
	})

	t.Run("config file value", func(t *testing.T) {
		fixture := t.TempDir()
		dir := t.TempDir()
		path := filepath.Join(dir, ".ptop.yaml")
		require.NoError(t, os.WriteFile(path, []byte("proc_root: "+fixture+"\n"), 0o644))

		saveFlagState(t)
		configFlag = path

		assert.Equal(t, fixture, doctorProcRoot())
	})

	t.Run("flag beats config file", func(t *testing.T) {
		fixture := t.TempDir()
		dir := t.TempDir()
		path := filepath.Join(dir, ".ptop.yaml")
		require.NoError(t, os.WriteFile(path, []byte("proc_root: /somewhere/else\n"), 0o644))

		saveFlagState(t)
		configFlag = path
		procRootFlag = fixture

		assert.Equal(t, fixture, doctorProcRoot())
	})
}
