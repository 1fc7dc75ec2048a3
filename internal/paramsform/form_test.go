package paramsform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/mdreader/internal/articleprops"
)

func mustLookup(t *testing.T, f articleprops.Field, value string) articleprops.Option {
	t.Helper()
	opt, ok := articleprops.Lookup(f, value)
	require.True(t, ok, "%s %s", f, value)
	return opt
}

func TestFormStartsAtDefault(t *testing.T) {
	assert.Equal(t, articleprops.Default(), NewForm().State())
}

func TestFormFieldsAreIndependent(t *testing.T) {
	f := NewForm()
	f.SetField(articleprops.FontColor, mustLookup(t, articleprops.FontColor, "#80D994"))
	f.SetField(articleprops.ContentWidth, mustLookup(t, articleprops.ContentWidth, "948px"))
	f.SetField(articleprops.FontColor, mustLookup(t, articleprops.FontColor, "#6FC1FD"))

	got := f.State()
	def := articleprops.Default()
	assert.Equal(t, "#6FC1FD", got.FontColor.Value)
	assert.Equal(t, "948px", got.ContentWidth.Value)
	assert.Equal(t, def.FontFamily, got.FontFamily)
	assert.Equal(t, def.FontSize, got.FontSize)
	assert.Equal(t, def.BackgroundColor, got.BackgroundColor)
}

func TestFormSetFieldTrustsCaller(t *testing.T) {
	f := NewForm()
	odd := articleprops.Option{Title: "700px", Value: "700px"}
	f.SetField(articleprops.ContentWidth, odd)
	assert.Equal(t, odd, f.State().ContentWidth)
}

func TestFormResetIsIdempotent(t *testing.T) {
	f := NewForm()
	f.SetField(articleprops.FontFamily, mustLookup(t, articleprops.FontFamily, "Ubuntu"))
	f.Reset()
	assert.Equal(t, articleprops.Default(), f.State())
	f.Reset()
	assert.Equal(t, articleprops.Default(), f.State())
}

func TestFormSnapshotIsDetached(t *testing.T) {
	f := NewForm()
	snap := f.State()
	f.SetField(articleprops.FontSize, mustLookup(t, articleprops.FontSize, "38px"))
	assert.Equal(t, "18px", snap.FontSize.Value)
}
