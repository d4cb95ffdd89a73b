package portal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

func png(name string) dto.Attachment {
	return dto.Attachment{Filename: name, Data: pngHeader}
}

func TestImagePicker_MaximoCinco(t *testing.T) {
	files := []dto.Attachment{png("1.png"), png("2.png"), png("3.png"), png("4.png"), png("5.png"), png("6.png")}

	accepted, rejected := portal.ImagePicker.Pick(files)

	assert.Len(t, accepted, 5)
	require.Len(t, rejected, 1)
	assert.Equal(t, "6.png", rejected[0].Filename)
	assert.Equal(t, "too-many-files", rejected[0].Reason)
}

func TestImagePicker_RechazaNoImagenes(t *testing.T) {
	files := []dto.Attachment{
		{Filename: "notes.txt", ContentType: "image/png", Data: []byte("hola")},
		png("ok.png"),
	}

	accepted, rejected := portal.ImagePicker.Pick(files)

	require.Len(t, accepted, 1)
	assert.Equal(t, "image/png", accepted[0].ContentType)
	require.Len(t, rejected, 1)
	assert.Equal(t, "file-invalid-type", rejected[0].Reason, "se usa el tipo detectado, no el declarado")
}

func TestLogoPicker_UnSoloArchivo(t *testing.T) {
	accepted, rejected := portal.LogoPicker.Pick([]dto.Attachment{png("a.png"), png("b.png")})
	assert.Len(t, accepted, 1)
	assert.Len(t, rejected, 1)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	files, err := portal.LoadFiles([]string{path})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "logo.png", files[0].Filename)
	assert.Equal(t, "image/png", files[0].ContentType)

	_, err = portal.LoadFiles([]string{filepath.Join(dir, "nope.png")})
	assert.Error(t, err)
}
