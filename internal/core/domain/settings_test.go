package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Empty(t, settings.Storage.DataDir)
	assert.Equal(t, DefaultWatchPerMinute, settings.Watch.PerMinute)
	assert.True(t, settings.PDF.PreferPDFToText)
	assert.Equal(t, DefaultSheetName, settings.Export.SheetName)
}
