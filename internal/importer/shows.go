package importer

// TrackedShow names a show to import along with its TVMaze code and the
// colors the web UI uses for it.
type TrackedShow struct {
	Name            string
	Code            string
	BackgroundColor string
	ForegroundColor string
}

// DefaultShows returns the tracked Arrowverse series.
func DefaultShows() []TrackedShow {
	return []TrackedShow{
		{Name: "Arrow", Code: "4", BackgroundColor: "#013300", ForegroundColor: "#ffffff"},
		{Name: "The Flash", Code: "13", BackgroundColor: "#AB0020", ForegroundColor: "#ffffff"},
		{Name: "Supergirl", Code: "1850", BackgroundColor: "#0200FF", ForegroundColor: "#ffffff"},
		{Name: "Legends of Tomorrow", Code: "1851", BackgroundColor: "#BBBBBB", ForegroundColor: "#000000"},
		{Name: "Batwoman", Code: "37776", BackgroundColor: "#B40800", ForegroundColor: "#ffffff"},
		{Name: "Black Lightning", Code: "20683", BackgroundColor: "#F3CC06", ForegroundColor: "#000000"},
	}
}
