package storage_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/infrastructure/storage"
)

// jpegBytes genera un JPEG sintético de w x h.
func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func newStore(t *testing.T) (*storage.ImageStore, string) {
	t.Helper()
	dir := t.TempDir()
	return storage.New(storage.Config{
		Dir:           dir,
		MaxBytes:      5 * 1024 * 1024,
		ProfileFolder: "perfil_photo",
	}), dir
}

func TestSave_RechazaArchivoMayorA5MB(t *testing.T) {
	store, _ := newStore(t)

	// 6MB de ceros: el límite debe dispararse antes de cualquier decode
	_, err := store.Save("banner", make([]byte, 6*1024*1024))
	assert.ErrorIs(t, err, storage.ErrTooLarge)
}

func TestSave_RechazaContenidoNoImagen(t *testing.T) {
	store, _ := newStore(t)

	_, err := store.Save("banner", []byte("definitivamente no soy una imagen"))
	assert.ErrorIs(t, err, storage.ErrNotImage)
}

func TestSave_RutaNamespacedPorCarpetaYFecha(t *testing.T) {
	store, dir := newStore(t)

	res, err := store.Save("banner", jpegBytes(t, 200, 100))
	require.NoError(t, err)

	now := time.Now().UTC()
	prefix := fmt.Sprintf("banner/%04d/%02d/%02d/", now.Year(), int(now.Month()), now.Day())
	assert.Regexp(t, regexp.MustCompile(`^`+regexp.QuoteMeta(prefix)+`\d{4}-\d{2}-\d{2}-[0-9a-f]{12}\.jpg$`), res.RelPath)

	// El archivo debe existir bajo el árbol static
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(res.RelPath)))
	assert.NoError(t, err)
}

func TestSave_RedimensionaProporcionalA1080(t *testing.T) {
	store, dir := newStore(t)

	// 200x100 -> 1080x540 (relación 2:1 preservada)
	res, err := store.Save("banner", jpegBytes(t, 200, 100))
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(res.RelPath)))
	require.NoError(t, err)
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 1080, cfg.Width)
	assert.Equal(t, 540, cfg.Height)
}

func TestSave_CarpetaDePerfilUsaResizeFijo(t *testing.T) {
	store, dir := newStore(t)

	res, err := store.Save("perfil_photo", jpegBytes(t, 640, 480))
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(res.RelPath)))
	require.NoError(t, err)
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 354, cfg.Width)
	assert.Equal(t, 472, cfg.Height)
}

func TestSave_AceptaPNGYReencodeaJPEG(t *testing.T) {
	store, _ := newStore(t)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 50, 50))))

	res, err := store.Save("banner", buf.Bytes())
	require.NoError(t, err)
	assert.Regexp(t, `\.jpg$`, res.Filename)
}

func TestRemove_ArchivoAusenteEsSilencioso(t *testing.T) {
	store, _ := newStore(t)

	// No debe entrar en pánico ni fallar: el delete de archivos es best-effort
	store.Remove("banner/2024/01/01/no-existe.jpg")
}

func TestRemove_EliminaArchivoExistente(t *testing.T) {
	store, dir := newStore(t)

	res, err := store.Save("banner", jpegBytes(t, 100, 100))
	require.NoError(t, err)

	store.Remove(res.RelPath)

	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(res.RelPath)))
	assert.True(t, os.IsNotExist(err))
}
