package categories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Lookup(t *testing.T) {
	svc := NewService(DefaultSet())

	assert.True(t, svc.Exists("UMPEG"))
	assert.False(t, svc.Exists("GAIB"))

	cat, ok := svc.Get("BANGKOM")
	require.True(t, ok)
	assert.Equal(t, "Pengembangan Kompetensi", cat.Name)

	assert.Len(t, svc.All(), 6)
}

func TestService_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(DefaultSet())

	require.NoError(t, svc.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, svc.All(), loaded.All())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestReadCategories_BadRow(t *testing.T) {
	input := "code,name,description\n,Tanpa Kode,oops\n"

	_, err := ReadCategories(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadCategories_Empty(t *testing.T) {
	cats, err := ReadCategories(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cats)
}
