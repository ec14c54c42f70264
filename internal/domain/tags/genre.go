package tags

type ArtGenre struct {
	ArtTag
}

func (ArtGenre) TableName() string {
	return "artgenres"
}

func NewArtGenre(name string, opts ...Option) (*ArtGenre, error) {
	t, err := newTag(name, opts)
	if err != nil {
		return nil, err
	}
	return &ArtGenre{ArtTag: t}, nil
}

func (g ArtGenre) SerialKey() string {
	return "artgenre:" + g.Code
}
