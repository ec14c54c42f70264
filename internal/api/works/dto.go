package works

// ---------- requests

type CreateArtworkRequest struct {
	Title       string   `json:"title" binding:"required,max=100"`
	Desc        string   `json:"desc"`
	DateCreated string   `json:"date_created"` // YYYY-MM-DD
	MainImageID *uint    `json:"main_img_id"`
	MediumCodes []string `json:"medium_codes"`
	GenreCodes  []string `json:"genre_codes"`
	ArtistIDs   []uint   `json:"artist_ids"`
}

// UpdateArtworkRequest: absent fields are left alone, an empty list clears a relation.
type UpdateArtworkRequest struct {
	Title          *string  `json:"title" binding:"omitempty,max=100"`
	Desc           *string  `json:"desc"`
	MainImageID    *uint    `json:"main_img_id"`
	ClearMainImage bool     `json:"clear_main_img"`
	MediumCodes    []string `json:"medium_codes"`
	GenreCodes     []string `json:"genre_codes"`
	ArtistIDs      []uint   `json:"artist_ids"`
}

type AttachImageRequest struct {
	ImageID uint   `json:"image_id" binding:"required"`
	Title   string `json:"title" binding:"max=80"`
	Caption string `json:"caption"`
	Main    bool   `json:"main"`
}

type AddInfoRequest struct {
	Name  string `json:"name" binding:"required,max=64"`
	Value string `json:"value" binding:"max=64"`
}
