package print

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/buildgridgo/internal/matrix"
	"github.com/vk/buildgridgo/internal/registry"
)

func TestPrint_EmitsOneJSONLinePerJob(t *testing.T) {
	out := &bytes.Buffer{}
	reg := registry.New()
	(&Module{Out: out}).Register(reg)

	runner, err := reg.Runner(Name)
	require.NoError(t, err)

	jobs := []*matrix.ResolvedJob{
		{
			Name:     "mcu-esp32-log-uart",
			Features: "mcu-esp32,log-uart",
			Target:   matrix.Target{Triple: "xtensa-esp32-none-elf", EspName: "esp32"},
			Values:   map[string]string{"mcu": "mcu-esp32", "log": "log-uart"},
		},
		{
			Name:     "mcu-nrf52840-log-rtt",
			Features: "mcu-nrf52840,log-rtt,boot-s140",
			Target:   matrix.Target{Triple: "thumbv7em-none-eabihf", Boot: "boot-s140"},
			Values:   map[string]string{"mcu": "mcu-nrf52840", "log": "log-rtt"},
		},
	}
	for _, job := range jobs {
		require.NoError(t, runner.Run(context.Background(), job))
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "mcu-esp32-log-uart", first["name"])
	assert.Equal(t, "xtensa-esp32-none-elf", first["target"])
	assert.Equal(t, "esp32", first["espname"])
	assert.Equal(t, "mcu-esp32,log-uart", first["features"])
	assert.NotContains(t, first, "boot", "empty optional fields must be omitted")

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "boot-s140", second["boot"])
	assert.NotContains(t, second, "espname")
}
