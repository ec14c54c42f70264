package works

import (
	"strings"
	"time"
)

// Links lists the shared entities an artwork points at.
// In a Patch a nil slice leaves the relation untouched and an empty one clears it.
type Links struct {
	MediumCodes []string
	GenreCodes  []string
	ArtistIDs   []uint
}

// Patch is a partial update. DateCreated is deliberately absent: it is set once.
type Patch struct {
	Title          *string
	Desc           *string
	MainImageID    *uint
	ClearMainImage bool

	Links Links
}

func (p *Patch) Validate() error {
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		if err := validateTitle(t); err != nil {
			return err
		}
		p.Title = &t
	}
	return nil
}

// Columns returns the scalar column updates for the patch.
func (p Patch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Desc != nil {
		if *p.Desc == "" {
			cols["description"] = nil
		} else {
			cols["description"] = *p.Desc
		}
	}
	if p.ClearMainImage {
		cols["main_img_id"] = nil
	} else if p.MainImageID != nil {
		cols["main_img_id"] = *p.MainImageID
	}
	return cols
}

// ParseDate accepts YYYY-MM-DD, the format date_created is serialized in.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(s))
}
