// internal/models/posyandu.go
package models

import "time"

type Posyandu struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Kelurahan string    `json:"kelurahan"`
	Kecamatan string    `json:"kecamatan"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PosyanduRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Address   string `json:"address" validate:"max=1024"`
	Kelurahan string `json:"kelurahan" validate:"required,max=255"`
	Kecamatan string `json:"kecamatan" validate:"required,max=255"`
}

type PosyanduFilter struct {
	Name      *string
	Kelurahan *string
	Kecamatan *string
}
