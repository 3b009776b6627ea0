package services

// EU/EEA member codes whose inclusion in targeting triggers the Digital
// Services Act beneficiary/payor disclosure fields.
var dsaCountries = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "HR": {}, "CY": {}, "CZ": {}, "DK": {},
	"EE": {}, "FI": {}, "FR": {}, "DE": {}, "GR": {}, "HU": {}, "IE": {},
	"IT": {}, "LV": {}, "LT": {}, "LU": {}, "MT": {}, "NL": {}, "PL": {},
	"PT": {}, "RO": {}, "SK": {}, "SI": {}, "ES": {}, "SE": {},
	"IS": {}, "LI": {}, "NO": {},
}

// RequiresDSA reports whether any targeted country falls under the DSA
// jurisdiction set.
func RequiresDSA(countries []string) bool {
	for _, c := range countries {
		if _, ok := dsaCountries[c]; ok {
			return true
		}
	}
	return false
}
