package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDatesCmd(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()
		// 2024-05-15 is a Wednesday.
		out, err := run(t, "dates", "--at", "2024-05-15", "--days", "7")
		require.NoError(t, err)
		assert.Equal(t, "start: 2024-05-06\nend:   2024-05-15\n", out)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "dates", "--at", "2024-05-19", "-o", "json")
		require.NoError(t, err)

		var got datesOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, datesOutput{StartDate: "2024-05-13", EndDate: "2024-05-19", Days: 6}, got)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "dates", "--at", "2024-05-13", "-o", "yaml")
		require.NoError(t, err)

		var got datesOutput
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, "2024-05-13", got.StartDate)
		assert.Equal(t, 0, got.Days)
	})

	t.Run("bad date", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "dates", "--at", "15/05/2024")
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "dates", "-o", "xml")
		assert.Error(t, err)
	})
}

func TestPasswordCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, "password", "Str0ng!pass")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	out, err = run(t, "password", "weak")
	assert.ErrorIs(t, err, errWeakPassword)
	assert.Contains(t, out, "at least 8 characters")
	assert.Contains(t, out, "digit")
	assert.Contains(t, out, "uppercase")
	assert.NotContains(t, out, "lowercase")
}

func TestOptionsCmd(t *testing.T) {
	t.Parallel()

	t.Run("list keeps order", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "options", "us=United States", "de=Germany")
		require.NoError(t, err)
		assert.Equal(t, "us\tUnited States\nde\tGermany\n", out)
	})

	t.Run("find", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "options", "us=United States", "de=Germany", "--find", "de")
		require.NoError(t, err)
		assert.Equal(t, "Germany\n", out)

		_, err = run(t, "options", "us=United States", "--find", "fr")
		assert.Error(t, err)
	})

	t.Run("sorted json", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "options", "b=Zürich", "a=Zagreb", "--lang", "de", "--json")
		require.NoError(t, err)

		var got []map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 2)
		assert.Equal(t, map[string]string{"label": "Zagreb", "value": "a"}, got[0])
	})

	t.Run("invalid pair", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "options", "nolabel")
		assert.Error(t, err)
	})
}

func TestDelayCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, "delay", "--ms", "0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "waited "))
}

func TestDownloadCmd(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, "https://files.example.com/r/1",
		httpmock.NewStringResponder(http.StatusOK, "%PDF-1.7"))

	dir := t.TempDir()
	out, err := run(t, "download", "https://files.example.com/r/1", "report", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "report.pdf"))

	data, err := os.ReadFile(filepath.Join(dir, "report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))

	httpmock.RegisterResponder(http.MethodGet, "https://files.example.com/r/2",
		httpmock.NewStringResponder(http.StatusForbidden, ""))
	_, err = run(t, "download", "https://files.example.com/r/2", "report", "--dir", dir)
	assert.Error(t, err)
}
