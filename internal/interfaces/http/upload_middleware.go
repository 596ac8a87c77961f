package http

import (
	"bytes"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/storage"
)

// Local key con el resultado del pipeline de imagen.
const LocalUpload = "uploaded_file"

// UploadImage procesa el campo multipart "file" antes del handler: valida
// tamaño y tipo, pasa el buffer por el pipeline de imagen y deja el archivo
// resultante en c.Locals. Si la petición no trae archivo, la ruta continúa
// sin él.
func UploadImage(store *storage.ImageStore, folder string, maxBytes int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.Next()
		}
		if fh.Size > maxBytes {
			return respondError(c, storage.ErrTooLarge)
		}
		if ct := fh.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
			return respondError(c, storage.ErrNotImage)
		}
		f, err := fh.Open()
		if err != nil {
			return respondError(c, err)
		}
		var buf bytes.Buffer
		_, err = io.Copy(&buf, f)
		f.Close()
		if err != nil {
			return respondError(c, err)
		}
		res, err := store.Save(folder, buf.Bytes())
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalUpload, &dto.UploadedFile{Filename: res.Filename, RelPath: res.RelPath})
		return c.Next()
	}
}

// GetUpload devuelve el archivo procesado por UploadImage, o nil si la
// petición no traía archivo.
func GetUpload(c *fiber.Ctx) *dto.UploadedFile {
	v := c.Locals(LocalUpload)
	if v == nil {
		return nil
	}
	u, _ := v.(*dto.UploadedFile)
	return u
}
