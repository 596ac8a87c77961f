package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Se usa para los invariantes que cruzan Product y Variation: has_variation
// se actualiza en la misma transacción que cambia la membresía de variaciones.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		variations repository.VariationRepository,
	) error) error
}

// FileRemover elimina un archivo procesado por su ruta relativa.
// Es best-effort: los archivos ausentes se ignoran y un fallo no debe
// bloquear la eliminación del registro. Lo implementa storage.ImageStore.
type FileRemover interface {
	Remove(relPath string)
}
