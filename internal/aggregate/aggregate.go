package aggregate

import (
	"math"
	"sort"

	"github.com/sells-group/atlas-cli/internal/model"
)

// Deduplicate merges plants retrieved from overlapping service calls into a
// unique set keyed by plant code. The first occurrence wins and input order is
// preserved; dropping later duplicates is a merge, not an error, since unions
// of the full dataset with fuel-specific endpoints are expected to overlap.
func Deduplicate(plants []model.Plant) []model.Plant {
	seen := make(map[int]bool, len(plants))
	unique := make([]model.Plant, 0, len(plants))
	for _, p := range plants {
		if seen[p.PlantCode] {
			continue
		}
		seen[p.PlantCode] = true
		unique = append(unique, p)
	}
	return unique
}

// StateSummary aggregates capacity for one state.
type StateSummary struct {
	State       string  `json:"state"`
	PlantCount  int     `json:"plant_count"`
	TotalMW     float64 `json:"total_mw"`
	RenewableMW float64 `json:"renewable_mw"`
}

// EnergyTypeSummary aggregates capacity for one energy type.
type EnergyTypeSummary struct {
	EnergyType model.EnergyType `json:"energy_type"`
	PlantCount int              `json:"plant_count"`
	TotalMW    float64          `json:"total_mw"`
	MeanMW     float64          `json:"mean_mw"`
}

// RenewableShare is the renewable fraction of a state's capacity.
// Percentage is NaN when the state's total capacity sum is zero, meaning
// "no data" rather than 0%.
type RenewableShare struct {
	State       string  `json:"state"`
	TotalMW     float64 `json:"total_mw"`
	RenewableMW float64 `json:"renewable_mw"`
	Percentage  float64 `json:"percentage"`
}

// ByState sums plant counts and capacity grouped by state, sorted by state.
func ByState(plants []model.Plant) []StateSummary {
	byState := make(map[string]*StateSummary)
	for _, p := range plants {
		s, ok := byState[p.Location.State]
		if !ok {
			s = &StateSummary{State: p.Location.State}
			byState[p.Location.State] = s
		}
		s.PlantCount++
		if p.Capacity.TotalMW != nil {
			s.TotalMW += *p.Capacity.TotalMW
		}
		s.RenewableMW += p.Capacity.RenewableMW()
	}

	summaries := make([]StateSummary, 0, len(byState))
	for _, s := range byState {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].State < summaries[j].State })
	return summaries
}

// ByEnergyType sums plant counts and capacity grouped by classified energy
// type, sorted by total capacity descending.
func ByEnergyType(plants []model.Plant) []EnergyTypeSummary {
	byType := make(map[model.EnergyType]*EnergyTypeSummary)
	counted := make(map[model.EnergyType]int)
	for _, p := range plants {
		et := p.PrimaryEnergyType()
		s, ok := byType[et]
		if !ok {
			s = &EnergyTypeSummary{EnergyType: et}
			byType[et] = s
		}
		s.PlantCount++
		if p.Capacity.TotalMW != nil {
			s.TotalMW += *p.Capacity.TotalMW
			counted[et]++
		}
	}

	summaries := make([]EnergyTypeSummary, 0, len(byType))
	for et, s := range byType {
		if n := counted[et]; n > 0 {
			s.MeanMW = s.TotalMW / float64(n)
		}
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalMW != summaries[j].TotalMW {
			return summaries[i].TotalMW > summaries[j].TotalMW
		}
		return summaries[i].EnergyType < summaries[j].EnergyType
	})
	return summaries
}

// RenewablePercentageByState computes each state's renewable share of total
// capacity, sorted by percentage descending with NaN groups last.
func RenewablePercentageByState(plants []model.Plant) []RenewableShare {
	states := ByState(plants)
	shares := make([]RenewableShare, 0, len(states))
	for _, s := range states {
		share := RenewableShare{
			State:       s.State,
			TotalMW:     s.TotalMW,
			RenewableMW: s.RenewableMW,
			Percentage:  math.NaN(),
		}
		if s.TotalMW != 0 {
			share.Percentage = s.RenewableMW / s.TotalMW * 100
		}
		shares = append(shares, share)
	}
	sort.SliceStable(shares, func(i, j int) bool {
		pi, pj := shares[i].Percentage, shares[j].Percentage
		if math.IsNaN(pi) {
			return false
		}
		if math.IsNaN(pj) {
			return true
		}
		return pi > pj
	})
	return shares
}

// StateEnergyPivot returns total capacity keyed by state then energy type.
// Absent combinations are simply missing from the inner map.
func StateEnergyPivot(plants []model.Plant) map[string]map[model.EnergyType]float64 {
	pivot := make(map[string]map[model.EnergyType]float64)
	for _, p := range plants {
		if p.Capacity.TotalMW == nil {
			continue
		}
		row, ok := pivot[p.Location.State]
		if !ok {
			row = make(map[model.EnergyType]float64)
			pivot[p.Location.State] = row
		}
		row[p.PrimaryEnergyType()] += *p.Capacity.TotalMW
	}
	return pivot
}
