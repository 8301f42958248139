package model

type Flags struct {
	Region  string
	Profile string

	// Service is the key forecasted when All is not set
	Service string
	All     bool
	Chart   bool
}
