package ui

// Stat is a festival figure counted up in the footer.
type Stat struct {
	Label  string
	Target int
}

// FestivalStats are the footer figures.
var FestivalStats = []Stat{
	{Label: "FILMS", Target: 128},
	{Label: "PREMIERES", Target: 18},
	{Label: "COUNTRIES", Target: 14},
}

// Sponsors scroll through the footer marquee.
var Sponsors = []string{
	"INDIE FILMS",
	"CINEMA HUB",
	"CITY ARTS",
	"SPONSOR X",
	"FILM TRUST",
	"CULTURE LAB",
}
