package folio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationsResolve(t *testing.T) {
	initLocales("en")

	assert.Equal(t, "Home", T("nav.home"))
	assert.Equal(t, "Contact", T("nav.contact"))
	assert.Equal(t, "Send", T("footer.submit"))
}

func TestTranslationsFallBackToID(t *testing.T) {
	initLocales("en")

	assert.Equal(t, "nav.nonexistent", T("nav.nonexistent"))
}

func TestGermanLocale(t *testing.T) {
	initLocales("de")
	defer initLocales("en")

	assert.Equal(t, "Projekte", T("nav.projects"))
	assert.Equal(t, "Zurück", T("footer.back"))
}

func TestUnknownLocaleFallsBackToEnglish(t *testing.T) {
	initLocales("xx")
	defer initLocales("en")

	assert.Equal(t, "About", T("nav.about"))
}

func TestTemplateData(t *testing.T) {
	initLocales("en")

	got := TData("projects.count", map[string]interface{}{"Shown": 3, "Total": 12})
	assert.Equal(t, "3 of 12 projects", got)
}

func TestLocaleFilesOverrideEmbeddedMessages(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "en.toml")
	require.NoError(t, os.WriteFile(file, []byte("[nav]\nhome = \"Start Here\"\n"), 0o644))

	localesDir = dir
	t.Cleanup(func() {
		localesDir = ""
		initLocales("en")
	})

	initLocales("en")
	assert.Equal(t, "Start Here", T("nav.home"))
	assert.Equal(t, "About", T("nav.about"), "IDs the file does not name keep the embedded message")
}
