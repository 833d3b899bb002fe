package servers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
	"github.com/steviee/serverseeker/internal/serverseeker"
	"github.com/steviee/serverseeker/internal/state"
)

const serverInfoResponse = `{
	"server":"1.2.3.4:25566","cracked":false,"description":"hello\nworld","last_seen":1700000000,
	"max_players":20,"online_players":1,"protocol":765,"version":"1.20.4",
	"players":[
		{"name":"Alice","uuid":"u1","last_seen":1700000000},
		{"name":"Bob","uuid":"u2","last_seen":1690000000}
	]
}`

func TestResolveAddress(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Reset()
	viper.Set(state.KeyDefaultsPort, 25570)

	tests := []struct {
		name     string
		addr     string
		flagPort int
		portSet  bool
		wantIP   string
		wantPort int
		wantErr  bool
	}{
		{name: "port in address", addr: "1.2.3.4:25566", wantIP: "1.2.3.4", wantPort: 25566},
		{name: "configured default", addr: "1.2.3.4", wantIP: "1.2.3.4", wantPort: 25570},
		{name: "flag overrides address", addr: "1.2.3.4:25566", flagPort: 25567, portSet: true, wantIP: "1.2.3.4", wantPort: 25567},
		{name: "flag out of range", addr: "1.2.3.4", flagPort: 70000, portSet: true, wantErr: true},
		{name: "bad port in address", addr: "1.2.3.4:abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip, port, err := resolveAddress(tt.addr, tt.flagPort, tt.portSet)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIP, ip)
			assert.Equal(t, tt.wantPort, port)
		})
	}
}

func TestInfo_Text(t *testing.T) {
	api := setupAPI(t, http.StatusOK, map[string]string{"/server_info": serverInfoResponse})

	out, err := execute(t, "info", "1.2.3.4", "--port", "25566", "--players", "1")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"api_key": "test-key",
		"ip":      "1.2.3.4",
		"port":    float64(25566),
	}, api.body("/server_info"))

	assert.Contains(t, out, "1.2.3.4:25566")
	assert.Contains(t, out, "1.20.4 (protocol 765)")
	assert.Contains(t, out, "1/20")
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "Alice")
	assert.NotContains(t, out, "Bob")
	assert.Contains(t, out, "Showing 1 of 2 players.")
}

func TestInfo_DefaultPort(t *testing.T) {
	api := setupAPI(t, http.StatusOK, map[string]string{"/server_info": serverInfoResponse})

	_, err := execute(t, "info", "1.2.3.4")
	require.NoError(t, err)

	assert.Equal(t, float64(serverseeker.DefaultPort), api.body("/server_info")["port"])
}

func TestInfo_JSON(t *testing.T) {
	setupAPI(t, http.StatusOK, map[string]string{"/server_info": serverInfoResponse})
	viper.Set(cmdutil.KeyJSON, true)

	out, err := execute(t, "info", "1.2.3.4:25566")
	require.NoError(t, err)

	var result struct {
		Status string                    `json:"status"`
		Data   serverseeker.ServerDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "1.2.3.4:25566", result.Data.Server)
	require.Len(t, result.Data.Players, 2)
	assert.Equal(t, "Bob", result.Data.Players[1].Name)
}

func TestInfo_ParseError(t *testing.T) {
	setupAPI(t, http.StatusOK, map[string]string{"/server_info": `not json`})

	_, err := execute(t, "info", "1.2.3.4")

	require.Error(t, err)
	assert.ErrorIs(t, err, serverseeker.ErrParse)
}

func TestOutputInfoText_NoPlayers(t *testing.T) {
	var buf bytes.Buffer
	detail := &serverseeker.ServerDetail{ServerSummary: serverseeker.ServerSummary{Server: "1.2.3.4:25565"}}

	require.NoError(t, outputInfoText(&buf, detail, 0, time.Now()))
	assert.Contains(t, buf.String(), "No players recorded.")
	assert.Contains(t, buf.String(), "Last seen:   never (-)")
}

func TestBrowse_RejectsJSON(t *testing.T) {
	setupAPI(t, http.StatusOK, nil)
	viper.Set(cmdutil.KeyJSON, true)

	_, err := execute(t, "browse")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support --json")
}
