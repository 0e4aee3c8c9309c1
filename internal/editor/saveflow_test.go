package editor

import (
	"regexp"
	"testing"
	"time"

	"scour/internal/errors"
	"scour/internal/script"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	path   string
	format script.Format
	err    error
	calls  int
}

func (r *recordingSaver) Save(path string, format script.Format) error {
	r.calls++
	r.path = path
	r.format = format
	return r.err
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)
}

func TestSaveFlow(t *testing.T) {
	t.Run("suggests_timestamped_sh_name", func(t *testing.T) {
		flow := NewSaveFlow(&recordingSaver{})
		pattern := regexp.MustCompile(`^rmlint-\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{4}\.sh$`)
		assert.Regexp(t, pattern, flow.Destination())
		assert.Equal(t, script.FormatSh, flow.Format())
	})

	t.Run("format_change_resuggests_until_typed", func(t *testing.T) {
		flow := NewSaveFlow(&recordingSaver{})
		flow.now = fixedClock

		flow.SelectFormat(script.FormatJSON)
		assert.Equal(t, "rmlint-2024-03-09T14:30:05+0000.json", flow.Destination())

		flow.SelectFormat(script.FormatCSV)
		assert.Equal(t, "rmlint-2024-03-09T14:30:05+0000.csv", flow.Destination())
	})

	t.Run("typed_name_keeps_base_swaps_extension", func(t *testing.T) {
		flow := NewSaveFlow(&recordingSaver{})

		flow.SelectDestination("foo.sh")
		flow.SelectFormat(script.FormatJSON)
		assert.Equal(t, "foo.json", flow.Destination())

		flow.SelectFormat(script.FormatSh)
		assert.Equal(t, "foo.sh", flow.Destination())
	})

	t.Run("typed_name_without_extension_left_alone", func(t *testing.T) {
		flow := NewSaveFlow(&recordingSaver{})
		flow.SelectDestination("cleanup-plan")
		flow.SelectFormat(script.FormatCSV)
		assert.Equal(t, "cleanup-plan", flow.Destination())
		assert.Equal(t, script.FormatCSV, flow.Format())
	})

	t.Run("clearing_destination_disables_save", func(t *testing.T) {
		flow := NewSaveFlow(&recordingSaver{})
		assert.True(t, flow.CanSave())

		flow.SelectDestination("")
		assert.False(t, flow.CanSave())

		flow.SelectDestination("plan.sh")
		assert.True(t, flow.CanSave())
	})

	t.Run("cleared_destination_resuggests_on_format_change", func(t *testing.T) {
		flow := NewSaveFlow(&recordingSaver{})
		flow.now = fixedClock
		flow.SelectDestination("")

		flow.SelectFormat(script.FormatJSON)
		assert.Equal(t, "rmlint-2024-03-09T14:30:05+0000.json", flow.Destination())
	})

	t.Run("confirm_delegates_to_saver", func(t *testing.T) {
		saver := &recordingSaver{}
		flow := NewSaveFlow(saver)
		flow.SelectDestination("out.json")
		flow.SelectFormat(script.FormatJSON)

		require.NoError(t, flow.ConfirmSave())
		assert.Equal(t, 1, saver.calls)
		assert.Equal(t, "out.json", saver.path)
		assert.Equal(t, script.FormatJSON, saver.format)
	})

	t.Run("captured_values_survive_later_chooser_input", func(t *testing.T) {
		saver := &recordingSaver{}
		flow := NewSaveFlow(saver)
		flow.SelectDestination("out.sh")

		dest := flow.Destination()
		format := flow.Format()

		// Chooser keeps moving after the confirm was captured.
		flow.SelectFormat(script.FormatJSON)
		flow.SelectDestination("elsewhere.json")

		require.NoError(t, flow.SaveTo(dest, format))
		assert.Equal(t, "out.sh", saver.path)
		assert.Equal(t, script.FormatSh, saver.format)
	})

	t.Run("save_to_empty_destination_fails", func(t *testing.T) {
		saver := &recordingSaver{}
		flow := NewSaveFlow(saver)

		assert.Error(t, flow.SaveTo("", script.FormatSh))
		assert.Zero(t, saver.calls)
	})

	t.Run("confirm_without_destination_fails", func(t *testing.T) {
		saver := &recordingSaver{}
		flow := NewSaveFlow(saver)
		flow.SelectDestination("")

		assert.Error(t, flow.ConfirmSave())
		assert.Zero(t, saver.calls)
	})

	t.Run("saver_errors_propagate", func(t *testing.T) {
		saver := &recordingSaver{err: errors.New("disk full")}
		flow := NewSaveFlow(saver)

		err := flow.ConfirmSave()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}
