package transfer

import "strings"

const ContinentUnknown = "Unknown"

var continentByCountry = map[string]string{}

func init() {
	groups := map[string][]string{
		"Europe": {
			"Albania", "Austria", "Belgium", "Bosnia and Herzegovina", "Bulgaria", "Croatia",
			"Czech Republic", "Czechia", "Denmark", "England", "Estonia", "Finland", "France",
			"Georgia", "Germany", "Greece", "Hungary", "Iceland", "Ireland", "Republic of Ireland",
			"Israel", "Italy", "Kosovo", "Latvia", "Lithuania", "Luxembourg", "Montenegro",
			"Netherlands", "North Macedonia", "Northern Ireland", "Norway", "Poland", "Portugal",
			"Romania", "Russia", "Scotland", "Serbia", "Slovakia", "Slovenia", "Spain", "Sweden",
			"Switzerland", "Turkey", "Türkiye", "Ukraine", "Wales", "Armenia", "Azerbaijan",
			"Belarus", "Cyprus", "Malta", "Moldova",
		},
		"South America": {
			"Argentina", "Bolivia", "Brazil", "Chile", "Colombia", "Ecuador", "Paraguay", "Peru",
			"Uruguay", "Venezuela",
		},
		"North America": {
			"Canada", "Costa Rica", "Cuba", "Curacao", "Dominican Republic", "El Salvador",
			"Guatemala", "Haiti", "Honduras", "Jamaica", "Mexico", "Panama", "Suriname",
			"Trinidad and Tobago", "United States", "USA",
		},
		"Africa": {
			"Algeria", "Angola", "Burkina Faso", "Cameroon", "Cape Verde", "Congo", "DR Congo",
			"Egypt", "Equatorial Guinea", "Gabon", "Gambia", "Ghana", "Guinea", "Guinea-Bissau",
			"Ivory Coast", "Côte d'Ivoire", "Kenya", "Mali", "Morocco", "Mozambique", "Nigeria",
			"Senegal", "Sierra Leone", "South Africa", "Togo", "Tunisia", "Zambia", "Zimbabwe",
		},
		"Asia": {
			"Australia", "China", "China PR", "India", "Indonesia", "Iran", "Iraq", "Japan",
			"Jordan", "Korea Republic", "South Korea", "Malaysia", "Qatar", "Saudi Arabia",
			"Thailand", "United Arab Emirates", "Uzbekistan", "Vietnam", "Philippines", "Syria",
		},
		"Oceania": {"New Zealand", "Fiji", "New Caledonia", "Papua New Guinea"},
	}

	for continent, countries := range groups {
		for _, country := range countries {
			continentByCountry[normalizeCountry(country)] = continent
		}
	}
}

// ContinentOf maps a nationality to its continent; unmapped names resolve to
// ContinentUnknown.
func ContinentOf(country string) string {
	if c, ok := continentByCountry[normalizeCountry(country)]; ok {
		return c
	}
	return ContinentUnknown
}

func normalizeCountry(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
