package output

import (
	"strconv"

	"github.com/podiumlabs/podium/pkg/merge"
	"github.com/podiumlabs/podium/pkg/tables"
)

// TallyToTableData prepares medal tally rows for tabular output.
func TallyToTableData(rows []tables.TallyRow) Data {
	data := Data{
		Headers:    []string{"Edition", "Country", "NOC", "Athletes", "Gold", "Silver", "Bronze", "Total"},
		RightAlign: []int{3, 4, 5, 6, 7},
	}
	for _, r := range rows {
		data.Rows = append(data.Rows, []string{
			r.Edition, r.Country, r.NOC,
			strconv.Itoa(r.AthleteCount),
			strconv.Itoa(r.Gold), strconv.Itoa(r.Silver), strconv.Itoa(r.Bronze),
			strconv.Itoa(r.Total),
		})
	}
	return data
}

// ReportToTableData prepares a merge report summary for tabular output.
func ReportToTableData(rep *merge.Report) Data {
	data := Data{
		Headers:    []string{"Metric", "Value"},
		RightAlign: []int{1},
	}
	add := func(metric string, value int) {
		data.Rows = append(data.Rows, []string{metric, strconv.Itoa(value)})
	}
	add("athletes matched", rep.AthletesMatched)
	add("athletes minted", rep.AthletesMinted)
	add("countries minted", rep.CountriesMinted)
	add("events added", rep.EventsAdded)
	add("events updated", rep.EventsUpdated)
	add("medal rows backfilled", rep.Backfilled)
	add("rows rejected", len(rep.Rejected))
	add("referential gaps", len(rep.Gaps))
	return data
}
