package location

// Sample UN locodes.
var (
	SESTO UNLcode = "SESTO"
	AUMEL UNLcode = "AUMEL"
	CNHKG UNLcode = "CNHKG"
	USNYC UNLcode = "USNYC"
	JNTKO UNLcode = "JNTKO"
	DEHAM UNLcode = "DEHAM"
	NLRTM UNLcode = "NLRTM"
	FIHEL UNLcode = "FIHEL"
	PLGDN UNLcode = "PLGDN"
	SGSIN UNLcode = "SGSIN"
)

// Sample ports.
var (
	Stockholm = &Location{SESTO, "Stockholm"}
	Melbourne = &Location{AUMEL, "Melbourne"}
	Hongkong  = &Location{CNHKG, "Hongkong"}
	NewYork   = &Location{USNYC, "New York"}
	Tokyo     = &Location{JNTKO, "Tokyo"}
	Hamburg   = &Location{DEHAM, "Hamburg"}
	Rotterdam = &Location{NLRTM, "Rotterdam"}
	Helsinki  = &Location{FIHEL, "Helsinki"}
	Gdansk    = &Location{PLGDN, "Gdansk"}
	Singapore = &Location{SGSIN, "Singapore"}
)

// Samples returns every sample port
func Samples() []*Location {
	return []*Location{Stockholm, Melbourne, Hongkong, NewYork, Tokyo, Hamburg, Rotterdam, Helsinki, Gdansk, Singapore}
}
