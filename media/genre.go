package media

// Genre is the genre information of a listing. Depending on the site family
// it is either a single delimited string or a list of tag links, so it is
// modelled as a closed set of variants: GenreText or GenreList. A nil Genre
// means the page had no genre information.
type Genre interface {
	isGenre()
}

// GenreText is a genre given as one string, e.g. "Action, Drama".
type GenreText string

// GenreList is a genre given as individual tags.
type GenreList []TaggedRef

func (GenreText) isGenre() {}
func (GenreList) isGenre() {}

// GenreNames flattens any genre variant into a list of names.
func GenreNames(g Genre) []string {
	switch v := g.(type) {
	case GenreText:
		if v == "" {
			return nil
		}
		return []string{string(v)}
	case GenreList:
		names := make([]string, 0, len(v))
		for _, ref := range v {
			names = append(names, ref.Name)
		}
		return names
	default:
		return nil
	}
}
