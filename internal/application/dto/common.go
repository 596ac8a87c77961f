package dto

// PageRequest paginación para listados (page empieza en 1).
type PageRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset devuelve el desplazamiento SQL equivalente.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UploadedFile describe el resultado del pipeline de subida que el handler
// entrega al caso de uso. RelPath es la ruta relativa
// {folder}/{YYYY}/{MM}/{DD}/{filename} bajo la que el pipeline escribió el
// archivo; los casos de uso la persisten tal cual, sin recalcular la fecha.
type UploadedFile struct {
	Filename string
	RelPath  string
}
