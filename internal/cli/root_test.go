package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhushansable/Gurukrupa-Mess/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		BackendURL: "http://localhost:8001",
		StorePath:  "/tmp/tiffin-test.db",
		Lang:       "en",
	}
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(testConfig())
	require.NotNil(t, cmd)
	assert.Equal(t, "tiffin", cmd.Use)
	assert.Contains(t, cmd.Long, "Gurukrupa Mess")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(testConfig())
	commands := [][]string{
		{"seed"}, {"register"}, {"login"}, {"logout"},
		{"profile"}, {"profile", "show"}, {"profile", "update"},
		{"home"}, {"menu"}, {"menu", "weekly"},
		{"plans"}, {"subscribe"}, {"subscriptions"},
		{"checkout"}, {"orders"}, {"order"}, {"support"},
		{"admin", "dashboard"}, {"admin", "orders"}, {"admin", "status"},
		{"admin", "customers"}, {"admin", "subscriptions"},
		{"admin", "menu", "add"}, {"admin", "menu", "update"}, {"admin", "menu", "delete"},
		{"admin", "plans", "add"}, {"admin", "plans", "update"},
	}

	for _, path := range commands {
		name := path[len(path)-1]
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err, "Command %v should exist", path)
			require.NotNil(t, subCmd)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cfg := testConfig()
	cfg.Lang = "mr"
	cmd := NewRootCommand(cfg)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	backendFlag := cmd.PersistentFlags().Lookup("backend")
	require.NotNil(t, backendFlag)
	assert.Equal(t, cfg.BackendURL, backendFlag.DefValue)

	storeFlag := cmd.PersistentFlags().Lookup("store")
	require.NotNil(t, storeFlag)
	assert.Equal(t, cfg.StorePath, storeFlag.DefValue)

	langFlag := cmd.PersistentFlags().Lookup("lang")
	require.NotNil(t, langFlag)
	assert.Equal(t, "mr", langFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("no-seed"))
}

func TestCheckoutCommandFlags(t *testing.T) {
	cmd := NewRootCommand(testConfig())
	checkoutCmd, _, err := cmd.Find([]string{"checkout"})
	require.NoError(t, err)

	qtyFlag := checkoutCmd.Flags().Lookup("qty")
	require.NotNil(t, qtyFlag)
	assert.Equal(t, "1", qtyFlag.DefValue)

	guestsFlag := checkoutCmd.Flags().Lookup("guests")
	require.NotNil(t, guestsFlag)
	assert.Equal(t, "1", guestsFlag.DefValue)

	addressFlag := checkoutCmd.Flags().Lookup("address")
	require.NotNil(t, addressFlag)
	assert.Equal(t, "", addressFlag.DefValue)

	require.NotNil(t, checkoutCmd.Flags().Lookup("dine-in"))
	require.NotNil(t, checkoutCmd.Flags().Lookup("notes"))
}

func TestAdminMenuAddFlags(t *testing.T) {
	cmd := NewRootCommand(testConfig())
	addCmd, _, err := cmd.Find([]string{"admin", "menu", "add"})
	require.NoError(t, err)

	dayFlag := addCmd.Flags().Lookup("day")
	require.NotNil(t, dayFlag)
	assert.Equal(t, "daily", dayFlag.DefValue)

	availableFlag := addCmd.Flags().Lookup("available")
	require.NotNil(t, availableFlag)
	assert.Equal(t, "true", availableFlag.DefValue)
}

func TestParseFilter(t *testing.T) {
	s, err := parseFilter("")
	require.NoError(t, err)
	assert.Empty(t, s)

	s, err = parseFilter("all")
	require.NoError(t, err)
	assert.Empty(t, s)

	s, err = parseFilter("preparing")
	require.NoError(t, err)
	assert.Equal(t, "preparing", s.String())

	_, err = parseFilter("shipped")
	assert.Error(t, err)
}
