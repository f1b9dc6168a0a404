package scoring

// GenreEntry is one known genre with the informal spellings users write.
// The Name is the catalog's canonical genre name; matching against a movie's
// genre list always goes through the canonical name.
type GenreEntry struct {
	Name    string
	Aliases []string
}

// genreVocabulary lists the catalog's movie genres. Loaded once, never
// mutated.
var genreVocabulary = []GenreEntry{
	{Name: "Action"},
	{Name: "Adventure"},
	{Name: "Animation", Aliases: []string{"animated", "anime"}},
	{Name: "Comedy", Aliases: []string{"funny"}},
	{Name: "Crime"},
	{Name: "Documentary", Aliases: []string{"documentaries"}},
	{Name: "Drama"},
	{Name: "Family"},
	{Name: "Fantasy"},
	{Name: "History", Aliases: []string{"historical"}},
	{Name: "Horror", Aliases: []string{"scary"}},
	{Name: "Music", Aliases: []string{"musical"}},
	{Name: "Mystery"},
	{Name: "Romance", Aliases: []string{"romantic", "rom-com"}},
	{Name: "Science Fiction", Aliases: []string{"sci-fi", "scifi"}},
	{Name: "Thriller"},
	{Name: "War"},
	{Name: "Western"},
}

// ServiceEntry is one known streaming service brand.
type ServiceEntry struct {
	Name    string
	Aliases []string
}

// serviceVocabulary lists the streaming brands users name in preferences.
var serviceVocabulary = []ServiceEntry{
	{Name: "Netflix"},
	{Name: "Hulu"},
	{Name: "Amazon Prime Video", Aliases: []string{"prime video", "amazon prime"}},
	{Name: "Disney+", Aliases: []string{"disney plus"}},
	{Name: "Max", Aliases: []string{"hbo max", "hbo"}},
	{Name: "Apple TV+", Aliases: []string{"apple tv"}},
	{Name: "Paramount+", Aliases: []string{"paramount plus", "paramount"}},
	{Name: "Peacock"},
}
