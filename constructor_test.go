package ceangal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConstructor_Valid(t *testing.T) {
	info, err := parseConstructor(NewServiceImpl)
	require.NoError(t, err)
	assert.Equal(t, 2, info.numParams)
	assert.False(t, info.returnsError)
	assert.Equal(t, "*ceangal.ServiceImpl", info.returnType.String())
}

func TestParseConstructor_WithError(t *testing.T) {
	ctor := func() (*SqlRepo, error) { return &SqlRepo{}, nil }
	info, err := parseConstructor(ctor)
	require.NoError(t, err)
	assert.True(t, info.returnsError)
	assert.Equal(t, 0, info.numParams)
}

func TestParseConstructor_Nil(t *testing.T) {
	_, err := parseConstructor(nil)
	assert.Error(t, err)
}

func TestParseConstructor_NotAFunction(t *testing.T) {
	_, err := parseConstructor("not a function")
	assert.Error(t, err)
}

func TestParseConstructor_NoReturnValue(t *testing.T) {
	_, err := parseConstructor(func() {})
	assert.Error(t, err)
}

func TestParseConstructor_TooManyReturns(t *testing.T) {
	_, err := parseConstructor(func() (*SqlRepo, *SqlRepo, error) { return nil, nil, nil })
	assert.Error(t, err)
}

func TestParseConstructor_NonPointerReturn(t *testing.T) {
	_, err := parseConstructor(func() SqlRepo { return SqlRepo{} })
	assert.Error(t, err)
}

func TestParseConstructor_SecondReturnNotError(t *testing.T) {
	_, err := parseConstructor(func() (*SqlRepo, string) { return nil, "" })
	assert.Error(t, err)
}

func TestSelectConstructor_Richest(t *testing.T) {
	infos, err := parseConstructors([]ConstructorFunc{
		NewWidgetBare,
		NewWidgetWithLoggerAndRepo,
		NewWidgetWithLogger,
	})
	require.NoError(t, err)

	selected := selectConstructor(infos)
	require.NotNil(t, selected)
	assert.Equal(t, 2, selected.numParams)
}

func TestSelectConstructor_TieKeepsFirstRegistered(t *testing.T) {
	infos, err := parseConstructors([]ConstructorFunc{
		NewWidgetWithLogger,
		NewWidgetAlternate,
	})
	require.NoError(t, err)

	selected := selectConstructor(infos)
	require.NotNil(t, selected)
	assert.Same(t, infos[0], selected)
}

func TestSelectConstructor_Empty(t *testing.T) {
	assert.Nil(t, selectConstructor(nil))
}

func TestParseConstructors_ReportsIndex(t *testing.T) {
	_, err := parseConstructors([]ConstructorFunc{NewWidgetBare, 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constructor 1")
}
