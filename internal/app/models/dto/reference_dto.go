package dto

// CreateLanguageRequest is the payload for POST /languages
type CreateLanguageRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// CreateCountryRequest is the payload for POST /countries
type CreateCountryRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// CreateMajorRequest is the payload for POST /majors
type CreateMajorRequest struct {
	Name       string `json:"name" binding:"required"`
	Department string `json:"department"`
}

// SeedReferenceResult reports the outcome of a reference-data seed call
type SeedReferenceResult struct {
	Seeded   bool `json:"seeded"`   // false when the table already had rows
	Inserted int  `json:"inserted"` // number of canonical rows inserted
}
