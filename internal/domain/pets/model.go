package pets

import "time"

// Species define los tipos de mascota conocidos. El campo es libre: el
// formulario acepta cualquier texto y estos valores solo son sugerencias.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// RecordType clasifica los documentos del historial.
type RecordType string

const (
	RecordVaccination RecordType = "vaccination"
	RecordMedical     RecordType = "medical"
	RecordOther       RecordType = "other"
)

// Record es una entrada del historial de la mascota. File es una referencia
// (nombre o URL); los archivos no se suben por esta API.
type Record struct {
	Type  RecordType `json:"type" validate:"omitempty,oneof=vaccination medical other"`
	Title string     `json:"title" validate:"required"`
	Date  string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	File  string     `json:"file,omitempty"`
}

// Pet es el perfil básico de una mascota de la sesión. Los tags json
// definen el formato guardado.
type Pet struct {
	ID string `json:"id"`

	Name  string  `json:"name"`
	Type  Species `json:"type"`
	Breed string  `json:"breed"`

	Records []Record `json:"records"`

	CreatedAt time.Time `json:"createdAt"`
}
