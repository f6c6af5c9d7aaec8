package beerxml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beer-recipe/core/scanner"
	"beer-recipe/internal/errors"
)

func recipeXML(name string) string {
	return `<RECIPE><NAME>` + name + `</NAME><VERSION>1</VERSION><TYPE>All Grain</TYPE>
<BREWER>Brad Smith</BREWER><BATCH_SIZE>18.93</BATCH_SIZE><BOIL_SIZE>20.82</BOIL_SIZE>
<BOIL_TIME>60</BOIL_TIME><EFFICIENCY>72</EFFICIENCY>
<STYLE><NAME>Dry Stout</NAME><CATEGORY>Stout</CATEGORY><VERSION>1</VERSION><TYPE>Ale</TYPE></STYLE>
<HOPS><HOP><NAME>Goldings</NAME><VERSION>1</VERSION><ALPHA>5</ALPHA><AMOUNT>0.028</AMOUNT><USE>Boil</USE><TIME>60</TIME></HOP></HOPS>
<FERMENTABLES/><MISCS/><YEASTS/><WATERS/>
<MASH><NAME>Single</NAME><VERSION>1</VERSION><GRAIN_TEMP>20</GRAIN_TEMP><MASH_STEPS/></MASH></RECIPE>`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScannerCanScan(t *testing.T) {
	ctx := context.Background()
	s := NewScanner()

	dir := t.TempDir()
	notes := writeFile(t, dir, "notes.txt", "not a recipe")

	ok, err := s.CanScan(ctx, &scanner.Input{Path: dir})
	require.NoError(t, err)
	assert.False(t, ok, "directory without xml files")

	ok, err = s.CanScan(ctx, &scanner.Input{Path: notes})
	require.NoError(t, err)
	assert.False(t, ok)

	stout := writeFile(t, dir, "nested/Stout.XML", recipeXML("Dry Stout"))
	ok, err = s.CanScan(ctx, &scanner.Input{Path: dir})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CanScan(ctx, &scanner.Input{Path: stout})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.CanScan(ctx, &scanner.Input{Path: filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestScannerScanDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_stout.xml", recipeXML("Dry Stout"))
	writeFile(t, dir, "b_list.xml", "<RECIPES>"+recipeXML("Helles")+recipeXML("Pils")+"</RECIPES>")
	writeFile(t, dir, "c_broken.xml", "<RECIPE><NAME>Broken")
	writeFile(t, dir, "d_empty.xml", "<RECIPES></RECIPES>")
	writeFile(t, dir, "e_unknown.xml", `<RECIPE><NAME>x</NAME><TYPE>BIAB</TYPE></RECIPE>`)
	writeFile(t, dir, "readme.md", "# recipes")

	result, err := NewScanner().Scan(context.Background(), &scanner.Input{Path: dir})
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	assert.Equal(t, "a_stout.xml", result.Documents[0].File)
	assert.Equal(t, "b_list.xml", result.Documents[1].File)
	assert.Equal(t, 3, result.RecipeCount())
	assert.Equal(t, "Pils", result.Documents[1].Recipes[1].Name)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, "c_broken.xml", result.Errors[0].File)
	assert.Equal(t, string(errors.TypeDecode), result.Errors[0].Code)
	assert.Equal(t, "e_unknown.xml", result.Errors[1].File)
	assert.True(t, errors.IsType(result.Errors[1].Err, errors.TypeUnknownVariant))

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "d_empty.xml", result.Warnings[0].File)
}

func TestScannerScanSingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stout.xml", recipeXML("Dry Stout"))

	result, err := NewScanner().Scan(context.Background(), &scanner.Input{Path: path})
	require.NoError(t, err)
	require.Len(t, result.Documents, 1)
	assert.Equal(t, "stout.xml", result.Documents[0].File)
}

func TestScannerScanCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stout.xml", recipeXML("Dry Stout"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner().Scan(ctx, &scanner.Input{Path: dir})
	assert.ErrorIs(t, err, context.Canceled)
}
