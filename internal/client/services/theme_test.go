package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_DefaultsToLight(t *testing.T) {
	svc := NewThemeService(newRecords(t))
	th, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, th)
}

func TestTheme_TogglePersists(t *testing.T) {
	ctx := context.Background()
	records := newRecords(t)
	svc := NewThemeService(records)

	th, err := svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, th)

	raw, err := records.Get(ctx, kv.ThemeKey())
	require.NoError(t, err)
	assert.Equal(t, "dark", string(raw))

	th, err = NewThemeService(records).Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, th)

	th, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, th)
}

func TestTheme_Errors(t *testing.T) {
	ctx := context.Background()

	svc := NewThemeService(&failingRepo{Repository: newRecords(t), getErr: errDisk})
	_, err := svc.Current(ctx)
	require.ErrorIs(t, err, errDisk)

	svc = NewThemeService(&failingRepo{Repository: newRecords(t), setErr: errDisk})
	th, err := svc.Toggle(ctx)
	require.ErrorIs(t, err, errDisk)
	assert.Equal(t, models.ThemeLight, th)
}
