package yaml

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/buildgridgo/internal/config"
	"github.com/vk/buildgridgo/internal/hcl"
	"github.com/vk/buildgridgo/internal/testutil"
)

// hclEquivalent loads the HCL rendition of sampleYAML.
func hclEquivalent(t *testing.T) *config.Model {
	t.Helper()
	source := `
		matrix {
			feature_separator = ","

			axis "mcu" {
				values = ["mcu-esp32", "mcu-nrf52840"]
			}

			axis "log" {
				values = ["log-rtt", "log-uart"]
			}

			include {
				match = { mcu = "mcu-esp32" }
				set   = { target = "xtensa-esp32-none-elf", espname = "esp32" }
			}

			exclude {
				match = { mcu = "mcu-nrf52840", log = "log-rtt" }
			}
		}
	`
	path := testutil.WriteMatrixFile(t, "matrix.hcl", source)
	model, err := hcl.NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	return model
}

const sampleYAML = `
matrix:
  feature_separator: ","
  axes:
    - name: mcu
      values: [mcu-esp32, mcu-nrf52840]
    - name: log
      values: [log-rtt, log-uart]
  include:
    - match: { mcu: mcu-esp32 }
      set: { target: xtensa-esp32-none-elf, espname: esp32 }
  exclude:
    - match: { mcu: mcu-nrf52840, log: log-rtt }
`

func TestLoader_ParsesMatrix(t *testing.T) {
	path := testutil.WriteMatrixFile(t, "matrix.yaml", sampleYAML)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, model.Matrix)

	m := model.Matrix
	assert.Equal(t, ",", m.Separator)

	require.Len(t, m.Axes, 2)
	assert.Equal(t, "mcu", m.Axes[0].Name)
	assert.Equal(t, []string{"mcu-esp32", "mcu-nrf52840"}, m.Axes[0].Values)

	require.Len(t, m.Includes, 1)
	assert.Equal(t, map[string]string{"mcu": "mcu-esp32"}, m.Includes[0].Match)
	assert.Equal(t, "esp32", m.Includes[0].Set["espname"])

	require.Len(t, m.Excludes, 1)
	assert.Equal(t, map[string]string{
		"mcu": "mcu-nrf52840",
		"log": "log-rtt",
	}, m.Excludes[0].Match)
}

func TestLoader_MatchesHCLModel(t *testing.T) {
	// The YAML loader must produce the same model the HCL loader produces
	// for an equivalent declaration, since both feed the same resolver.
	yamlPath := testutil.WriteMatrixFile(t, "matrix.yaml", sampleYAML)
	yamlModel, err := NewLoader().Load(context.Background(), yamlPath)
	require.NoError(t, err)

	hclModel := hclEquivalent(t)

	if diff := cmp.Diff(hclModel.Matrix, yamlModel.Matrix); diff != "" {
		t.Fatalf("loaders disagree (-hcl +yaml):\n%s", diff)
	}
}

func TestLoader_MalformedYAMLFails(t *testing.T) {
	path := testutil.WriteMatrixFile(t, "matrix.yaml", "matrix: [")

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoader_NoMatrixDeclaration(t *testing.T) {
	path := testutil.WriteMatrixFile(t, "matrix.yaml", "unrelated: true")

	_, err := NewLoader().Load(context.Background(), path)
	assert.ErrorContains(t, err, "no matrix declaration found")
}
