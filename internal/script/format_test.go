package script

import (
	"testing"

	"scour/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		for _, name := range []string{"sh", "json", "csv"} {
			f, err := ParseFormat(name)
			require.NoError(t, err)
			assert.Equal(t, name, f.Ext())
		}

		_, err := ParseFormat("yaml")
		assert.True(t, errors.IsUnsupportedFormat(err))

		_, err = ParseFormat("")
		assert.Error(t, err)
	})

	t.Run("next_cycles", func(t *testing.T) {
		assert.Equal(t, FormatJSON, FormatSh.Next())
		assert.Equal(t, FormatCSV, FormatJSON.Next())
		assert.Equal(t, FormatSh, FormatCSV.Next())
		// Unknown formats reset to the default.
		assert.Equal(t, FormatSh, Format("bogus").Next())
	})
}
