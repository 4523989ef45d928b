package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
)

func TestExitError(t *testing.T) {
	err := &ExitError{Code: ExitCommandError, Message: "bad flag"}
	assert.Equal(t, "bad flag", err.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	wrapped := &ExitError{Code: ExitFailure, Err: errors.New("boom")}
	assert.Equal(t, "boom", wrapped.Error())

	withMsg := &ExitError{Code: ExitFailure, Message: "write output", Err: errors.New("closed")}
	assert.Equal(t, "write output: closed", withMsg.Error())

	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("outer: %w", &ExitError{Code: ExitCommandError, Message: "x"})))
}

func TestOutputFormatterText(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out, ErrWriter: &errOut}

	require.NoError(t, f.Render(map[string]int{"n": 1}, func(w io.Writer) error {
		_, err := io.WriteString(w, "rendered\n")
		return err
	}))
	assert.Equal(t, "rendered\n", out.String())

	require.NoError(t, f.Error("Invalid credentials", 401))
	assert.Equal(t, "Error: Invalid credentials\n", errOut.String())
}

func TestOutputFormatterJSON(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out}

	require.NoError(t, f.Success("Deleted", map[string]string{"id": "m1"}))
	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)

	out.Reset()
	require.NoError(t, f.Error("Not authorized", 403))
	resp = CLIResponse{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Not authorized", resp.Error.Message)
	assert.Equal(t, 403, resp.Error.StatusCode)
}

func TestVerboseLog(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out, ErrWriter: &errOut}
	f.VerboseLog("hidden %d", 1)
	assert.Empty(t, errOut.String())

	f.Verbose = true
	f.VerboseLog("shown %d", 2)
	assert.Equal(t, "shown 2\n", errOut.String())
	assert.Empty(t, out.String(), "diagnostics must not corrupt JSON output")
}

func TestFailCarriesStatusCode(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out}

	err := fail(f, fmt.Errorf("payment: %w", &api.Error{StatusCode: 500, Detail: "Internal server error"}))
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "payment: Internal server error", resp.Error.Message)
	assert.Equal(t, 500, resp.Error.StatusCode)
}
