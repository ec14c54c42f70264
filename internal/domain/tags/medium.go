package tags

type ArtMedium struct {
	ArtTag
}

func (ArtMedium) TableName() string {
	return "artmediums"
}

func NewArtMedium(name string, opts ...Option) (*ArtMedium, error) {
	t, err := newTag(name, opts)
	if err != nil {
		return nil, err
	}
	return &ArtMedium{ArtTag: t}, nil
}

func (m ArtMedium) SerialKey() string {
	return "artmedium:" + m.Code
}
