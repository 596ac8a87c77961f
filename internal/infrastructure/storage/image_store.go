// Package storage implementa el pipeline de imágenes: valida el buffer
// entrante, corrige la orientación EXIF, redimensiona, re-encodea con pérdida
// y escribe bajo un árbol namespaced por carpeta y fecha UTC. El buffer nunca
// toca el disco antes de procesarse.
package storage

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Errores del pipeline; la capa HTTP los traduce a 400.
var (
	ErrTooLarge = errors.New("el archivo supera el tamaño máximo permitido")
	ErrNotImage = errors.New("el archivo enviado no es una imagen")
)

const (
	profileWidth  = 354
	profileHeight = 472
	standardWidth = 1080
	jpegQuality   = 80
)

// Config opciones del almacén de imágenes.
type Config struct {
	Dir           string // raíz del árbol static/
	MaxBytes      int64  // límite del archivo entrante (5MB por defecto)
	ProfileFolder string // carpeta con resize fijo 354x472
}

// ImageStore procesa y guarda imágenes bajo Dir.
type ImageStore struct {
	dir           string
	maxBytes      int64
	profileFolder string
}

// New construye el almacén.
func New(cfg Config) *ImageStore {
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	return &ImageStore{dir: cfg.Dir, maxBytes: maxBytes, profileFolder: cfg.ProfileFolder}
}

// Result nombre asignado y ruta relativa de la imagen procesada.
type Result struct {
	Filename string
	RelPath  string // folder/YYYY/MM/DD/filename, separadores "/" siempre
}

// Save valida, procesa y escribe una imagen. El tamaño y el tipo MIME se
// verifican antes de decodificar; la carpeta de perfil usa el resize fijo
// 354x472 y el resto escala proporcionalmente a 1080px de ancho.
func (s *ImageStore) Save(folder string, buf []byte) (*Result, error) {
	if int64(len(buf)) > s.maxBytes {
		return nil, ErrTooLarge
	}
	if !strings.HasPrefix(http.DetectContentType(buf), "image/") {
		return nil, ErrNotImage
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, ErrNotImage
	}
	img = autoOrient(buf, img)

	if folder == s.profileFolder {
		img = scale(img, profileWidth, profileHeight)
	} else {
		b := img.Bounds()
		h := (b.Dy()*standardWidth + b.Dx()/2) / b.Dx()
		img = scale(img, standardWidth, h)
	}

	now := time.Now().UTC()
	year := fmt.Sprintf("%04d", now.Year())
	month := fmt.Sprintf("%02d", int(now.Month()))
	day := fmt.Sprintf("%02d", now.Day())

	filename := fmt.Sprintf("%s-%s-%s-%s.jpg", year, month, day, randomHex(6))

	destDir := filepath.Join(s.dir, folder, year, month, day)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de destino: %w", err)
	}

	f, err := os.Create(filepath.Join(destDir, filename))
	if err != nil {
		return nil, fmt.Errorf("crear archivo de imagen: %w", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encodear imagen: %w", err)
	}

	return &Result{
		Filename: filename,
		RelPath:  fmt.Sprintf("%s/%s/%s/%s/%s", folder, year, month, day, filename),
	}, nil
}

// Remove elimina un archivo por su ruta relativa. Es best-effort: un archivo
// ausente se ignora en silencio y cualquier otro fallo solo se registra,
// nunca bloquea la eliminación del registro que lo referenciaba.
func (s *ImageStore) Remove(relPath string) {
	if relPath == "" {
		return
	}
	full := filepath.Join(s.dir, filepath.FromSlash(relPath))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", relPath).Msg("no se pudo eliminar el archivo de imagen")
	}
}

// autoOrient aplica la orientación EXIF embebida, si existe. Un buffer sin
// EXIF (PNG, WebP, JPEG sin metadatos) se devuelve tal cual.
func autoOrient(buf []byte, img image.Image) image.Image {
	x, err := exif.Decode(bytes.NewReader(buf))
	if err != nil {
		return img
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return img
	}
	orientation, err := tag.Int(0)
	if err != nil || orientation <= 1 || orientation > 8 {
		return img
	}
	return reorient(img, orientation)
}

// reorient materializa la transformación de cada valor EXIF 2..8
// (espejos, 180, y los cuatro casos que intercambian ancho y alto).
func reorient(img image.Image, orientation int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var dst *image.RGBA
	switch orientation {
	case 5, 6, 7, 8:
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
	default:
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			switch orientation {
			case 2: // espejo horizontal
				dst.Set(w-1-x, y, c)
			case 3: // 180
				dst.Set(w-1-x, h-1-y, c)
			case 4: // espejo vertical
				dst.Set(x, h-1-y, c)
			case 5: // transpuesta
				dst.Set(y, x, c)
			case 6: // 90 horario
				dst.Set(h-1-y, x, c)
			case 7: // transversa
				dst.Set(h-1-y, w-1-x, c)
			case 8: // 90 antihorario
				dst.Set(y, w-1-x, c)
			}
		}
	}
	return dst
}

func scale(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return strings.Repeat("0", n*2)
	}
	return hex.EncodeToString(buf)
}
