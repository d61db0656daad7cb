package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"orderbot/internal/adapters/out/seed"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
dishes:
  - number: 1
    name: Pad Thai
    type: Pad Thai
    price: "58"
    tags: [chicken, rice]
  - number: 2
    name: Tom Yum
    type: Soups
    price: "32.5"
    tags: [spicy, sea_food]
agents:
  - phone: "972542562628"
    name: Avi
`

func TestParse_Command(t *testing.T) {
	f, err := seed.Parse([]byte(document))
	require.NoError(t, err)

	cmd, err := f.Command()
	require.NoError(t, err)

	require.Len(t, cmd.Dishes(), 2)
	tomYum := cmd.Dishes()[1]
	assert.Equal(t, int64(2), tomYum.Number())
	assert.Equal(t, "Soups", tomYum.Type())
	assert.True(t, tomYum.Price().IsEqual(kernel.MustNewPrice("32.5")))
	assert.Equal(t, catalog.NewTags(catalog.Spicy, catalog.SeaFood), tomYum.Tags())

	require.Len(t, cmd.Agents(), 1)
	assert.Equal(t, "+972542562628", cmd.Agents()[0].Phone().String())
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := seed.Parse([]byte("dishes: []\nwaiters: []\n"))
	require.Error(t, err)
}

func TestCommand_Rejects(t *testing.T) {
	tests := map[string]struct {
		doc  string
		want error
	}{
		"no agents": {
			doc:  "dishes: []\n",
			want: errs.ErrValueIsRequired,
		},
		"duplicate dish name": {
			doc: `
dishes:
  - {number: 1, name: Pad Thai, type: Pad Thai, price: "58"}
  - {number: 2, name: Pad Thai, type: Pad Thai, price: "60"}
agents:
  - {phone: "0501234567", name: Avi}
`,
			want: errs.ErrValueIsInvalid,
		},
		"bad price": {
			doc: `
dishes:
  - {number: 1, name: Pad Thai, type: Pad Thai, price: cheap}
agents:
  - {phone: "0501234567", name: Avi}
`,
			want: errs.ErrValueIsInvalid,
		},
		"unknown tag": {
			doc: `
dishes:
  - {number: 1, name: Pad Thai, type: Pad Thai, price: "58", tags: [pork]}
agents:
  - {phone: "0501234567", name: Avi}
`,
			want: errs.ErrValueIsInvalid,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := seed.Parse([]byte(tt.doc))
			require.NoError(t, err)

			_, err = f.Command()

			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o600))

	f, err := seed.Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Dishes, 2)

	_, err = seed.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_ShippedSeedFile(t *testing.T) {
	f, err := seed.Load(filepath.Join("..", "..", "..", "..", "configs", "seed.yaml"))
	require.NoError(t, err)

	cmd, err := f.Command()
	require.NoError(t, err)

	types := make(map[string]bool)
	for _, d := range cmd.Dishes() {
		types[d.Type()] = true
	}
	for _, s := range catalog.Sections() {
		assert.True(t, types[s.Type], "section %s has no dishes", s.Type)
	}
}
