package console

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/kettari/patterns-playground/internal/currency"
	"github.com/kettari/patterns-playground/internal/garden"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog redirects the default logger into a buffer for the test
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var result []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		record := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		result = append(result, record)
	}
	return result
}

func messages(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	var result []string
	for _, r := range records(t, buf) {
		result = append(result, r["msg"].(string))
	}
	return result
}

func TestCurrencyLookupCommand_Run(t *testing.T) {
	buf := captureLog(t)

	err := NewCurrencyLookupCommand("USA").Run([]string{"USA", "uk", "Spain"})
	require.NoError(t, err)

	got := records(t, buf)
	require.Len(t, got, 3)
	assert.Equal(t, "currency found", got[0]["msg"])
	assert.Equal(t, "USD", got[0]["code"])
	assert.Equal(t, "💵", got[0]["symbol"])
	assert.Equal(t, currency.NoCurrencyMessage, got[1]["msg"])
	assert.Equal(t, "UK", got[1]["country"])
	assert.NotContains(t, got[1], "code")
	assert.Equal(t, "EUR", got[2]["code"])
	assert.Equal(t, "💶", got[2]["symbol"])
}

func TestCurrencyLookupCommand_UnknownCountry(t *testing.T) {
	buf := captureLog(t)

	err := NewCurrencyLookupCommand("USA").Run([]string{"USA", "Narnia"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, currency.ErrUnknownCountry))
	assert.Empty(t, records(t, buf))
}

func TestCurrencyLookupCommand_DefaultCountry(t *testing.T) {
	tests := []struct {
		name     string
		country  string
		wantMsg  string
		wantCode any
		wantErr  bool
	}{
		{name: "spain", country: "Spain", wantMsg: "currency found", wantCode: "EUR"},
		{name: "usa", country: "usa", wantMsg: "currency found", wantCode: "USD"},
		{name: "uk", country: "UK", wantMsg: currency.NoCurrencyMessage, wantCode: nil},
		{name: "unknown", country: "Atlantis", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			err := NewCurrencyLookupCommand(tt.country).Run(nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, currency.ErrUnknownCountry))
				return
			}
			require.NoError(t, err)

			got := records(t, buf)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantMsg, got[0]["msg"])
			assert.Equal(t, tt.wantCode, got[0]["code"])
		})
	}
}

func TestChamberAdvanceCommand_Run(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantNumber   float64
		wantMessages int
		wantErr      bool
	}{
		{name: "default step", args: nil, wantNumber: 1, wantMessages: 3},
		{name: "three steps", args: []string{"3"}, wantNumber: 3, wantMessages: 3},
		{name: "zero steps", args: []string{"0"}, wantNumber: 0, wantMessages: 1},
		{name: "not a number", args: []string{"many"}, wantErr: true},
		{name: "negative", args: []string{"-1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			err := NewChamberAdvanceCommand().Run(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			got := records(t, buf)
			require.Len(t, got, tt.wantMessages)
			last := got[len(got)-1]
			assert.Equal(t, "test chambers advanced", last["msg"])
			assert.Equal(t, tt.wantNumber, last["test_chamber_number"])
		})
	}
}

func TestGardenPrepareCommand_Run(t *testing.T) {
	buf := captureLog(t)

	require.NoError(t, NewGardenPrepareCommand().Run(nil))

	assert.Equal(t, []string{
		"prepare the soil for the rose garden",
		"plant seeds for the rose garden",
		"water the rose garden",
	}, messages(t, buf))
}

func TestGardenPrepareCommand_Unknown(t *testing.T) {
	captureLog(t)

	err := NewGardenPrepareCommand().Run([]string{"zen"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, garden.ErrUnknownVariant))
}

func TestDemoAllCommand_Run(t *testing.T) {
	buf := captureLog(t)

	require.NoError(t, NewDemoAllCommand().Run(nil))

	got := messages(t, buf)
	factory := indexOf(got, "factory method demo")
	observer := indexOf(got, "observer demo")
	template := indexOf(got, "template method demo")
	require.NotEqual(t, -1, factory)
	assert.Less(t, factory, observer)
	assert.Less(t, observer, template)
	assert.Equal(t, "water the rose garden", got[len(got)-1])
	assert.Contains(t, got[factory:observer], currency.NoCurrencyMessage)
}

func TestHelpCommand_Run(t *testing.T) {
	commands := []Command{
		NewCurrencyLookupCommand("USA"),
		NewChamberAdvanceCommand(),
		NewGardenPrepareCommand(),
		NewDemoAllCommand(),
	}
	var out bytes.Buffer

	require.NoError(t, NewHelpCommand(&out, commands...).Run(nil))

	for _, c := range commands {
		assert.Contains(t, out.String(), c.Name()+" - "+c.Description())
	}
	assert.Contains(t, out.String(), "PLAYGROUND_COUNTRY")
}

func indexOf(items []string, item string) int {
	for i, v := range items {
		if v == item {
			return i
		}
	}
	return -1
}
