package tables

// CountryColumns is the schema contract of the NOC/country table.
var CountryColumns = []string{"noc", "country"}

// Country is one row of the NOC/country table. The NOC code is the table's
// identifier; the name is the display form.
type Country struct {
	NOC  string
	Name string
}

// Record renders the row in column order.
func (c Country) Record() []string {
	return []string{c.NOC, c.Name}
}

// CountryFromRecord builds a Country from a header-keyed record.
func CountryFromRecord(rec map[string]string) Country {
	return Country{
		NOC:  rec["noc"],
		Name: rec["country"],
	}
}
