package entity

import "time"

// Plant entrada del catálogo. CName y SName son únicos por separado.
type Plant struct {
	ID        string
	CName     string // nombre común
	SName     string // nombre científico
	Genus     string
	Species   string
	Care      string // texto libre de cuidados
	PColor    string // color primario
	SColor    string // color secundario
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
