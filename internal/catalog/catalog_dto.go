package catalog

import "go-garment-store/internal/backend"

// CatalogView: harga sudah dinormalisasi ke integer satuan terkecil
// supaya frontend tidak ikut-ikutan parsing string "Rp ...".
type CatalogView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Stock       int      `json:"stock"`
}

type ReviewView = backend.Review

type AddReviewRequest struct {
	CatalogID string `json:"catalogId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}
