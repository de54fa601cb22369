package models

// Settings is the editable configuration as shown on the settings screen.
// Every part is raw text; Save validates before anything is written.
type Settings struct {
	GeneralOptions string `json:"generalOptions"`
	Icons          string `json:"icons" validate:"required"`
	Filters        string `json:"filters" validate:"required"`
	Styles         string `json:"styles" validate:"required"`
}

func DefaultSettings() Settings {
	return Settings{
		GeneralOptions: DefaultGeneralOptions,
		Icons:          "[]",
		Filters:        "[]",
		Styles:         "",
	}
}
