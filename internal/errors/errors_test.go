package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SetsAllFields(t *testing.T) {
	base := stderrors.New("connection refused")

	ee := New(base).
		Component("dataservice").
		Category(CategoryNetwork).
		Context("dataset", "sun-data").
		Context("attempt", 2).
		Build()

	assert.Equal(t, "connection refused", ee.Error())
	assert.Equal(t, "dataservice", ee.Component)
	assert.Equal(t, CategoryNetwork, ee.Category)
	assert.Equal(t, "sun-data", ee.Context["dataset"])
	assert.Equal(t, 2, ee.Context["attempt"])
	assert.False(t, ee.Timestamp.IsZero())
}

func TestBuilder_Defaults(t *testing.T) {
	ee := Newf("something went wrong").Build()

	assert.Equal(t, ComponentUnknown, ee.Component)
	assert.Equal(t, CategoryGeneric, ee.Category)
	assert.Nil(t, ee.Context)
}

func TestNewf_Formats(t *testing.T) {
	ee := Newf("unknown plant: %s", "9-Middle").Build()
	assert.Equal(t, "unknown plant: 9-Middle", ee.Error())
}

func TestEnhancedError_UnwrapsToWrapped(t *testing.T) {
	base := stderrors.New("boom")
	ee := New(base).Build()

	assert.ErrorIs(t, ee, base)
	assert.Equal(t, base, Unwrap(ee))
}

func TestEnhancedError_IsMatchesByCategory(t *testing.T) {
	sentinel := Newf("data unavailable").
		Category(CategoryDataUnavailable).
		Build()
	other := Newf("dataset sun-data returned status 500").
		Component("dataservice").
		Category(CategoryDataUnavailable).
		Build()

	assert.ErrorIs(t, other, sentinel)

	mismatch := Newf("bad payload").Category(CategoryValidation).Build()
	assert.NotErrorIs(t, mismatch, sentinel)
}

func TestEnhancedError_AsThroughWrapping(t *testing.T) {
	ee := Newf("empty series").Category(CategoryEmptySeries).Build()
	wrapped := Join(ee, stderrors.New("secondary"))

	var got *EnhancedError
	require.True(t, As(wrapped, &got))
	assert.Equal(t, CategoryEmptySeries, got.Category)
}

func TestGetContext_ReturnsCopy(t *testing.T) {
	ee := Newf("oops").Context("key", "value").Build()

	ctx := ee.GetContext()
	ctx["key"] = "mutated"

	assert.Equal(t, "value", ee.Context["key"])
	assert.Nil(t, Newf("no context").Build().GetContext())
}
