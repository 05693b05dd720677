package analytics

import (
	"houseprojects/domain"
	"math"
	"sort"
	"time"

	"github.com/fundwit/go-commons/types"
)

const TrendMonths = 6

type Overview struct {
	TotalProjects      int     `json:"totalProjects"`
	ActiveProjects     int     `json:"activeProjects"`
	CompletedProjects  int     `json:"completedProjects"`
	OverdueProjects    int     `json:"overdueProjects"`
	CompletedThisMonth int     `json:"completedThisMonth"`
	AvgCompletionDays  float64 `json:"avgCompletionDays"`
	CompletionRate     int     `json:"completionRate"`
	TotalNames         int     `json:"totalNames"`
	TotalGroups        int     `json:"totalGroups"`

	WorkloadByPerson []PersonWorkload `json:"workloadByPerson"`
	ProjectsByGroup  []GroupCount     `json:"projectsByGroup"`
}

type PersonWorkload struct {
	NameID    types.ID `json:"nameId"`
	Name      string   `json:"name"`
	Active    int      `json:"active"`
	Completed int      `json:"completed"`
	Overdue   int      `json:"overdue"`
}

type GroupCount struct {
	Group     string `json:"group"`
	Total     int    `json:"total"`
	Active    int    `json:"active"`
	Completed int    `json:"completed"`
	Overdue   int    `json:"overdue"`
}

type TrendPoint struct {
	Month     string `json:"month"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

type Trends struct {
	Trends []TrendPoint `json:"trends"`
}

// IsOverdue reports an active project whose due day is before the day of now.
func IsOverdue(p *domain.Project, now time.Time) bool {
	return !p.Completed && !p.DueDate.IsZero() && p.DueDate.Before(domain.DateOfTime(now))
}

// CompletedOnTime reports a completion on or before the due day, judged in loc.
func CompletedOnTime(p *domain.Project, loc *time.Location) bool {
	if p.DueDate.IsZero() {
		return true
	}
	return !domain.DateOfTime(p.CompletedDate.Time().In(loc)).After(p.DueDate)
}

// ComputeOverview aggregates the three collections. Empty input yields zero counts and a 100% completion rate.
func ComputeOverview(projects []domain.Project, names []domain.Name, groups []domain.Group, now time.Time) Overview {
	o := Overview{
		TotalProjects:    len(projects),
		TotalNames:       len(names),
		TotalGroups:      len(groups),
		CompletionRate:   100,
		WorkloadByPerson: []PersonWorkload{},
		ProjectsByGroup:  []GroupCount{},
	}

	workload := map[types.ID]*PersonWorkload{}
	for _, n := range names {
		workload[n.ID] = &PersonWorkload{NameID: n.ID, Name: n.Name}
	}
	byGroup := map[string]*GroupCount{}
	for _, g := range groups {
		byGroup[g.Name] = &GroupCount{Group: g.Name}
	}

	var completionDays float64
	timed, onTime := 0, 0
	for i := range projects {
		p := &projects[i]
		gc, ok := byGroup[p.Group]
		if !ok {
			gc = &GroupCount{Group: p.Group}
			byGroup[p.Group] = gc
		}
		gc.Total++
		w := workload[p.NameID]

		if p.Completed {
			o.CompletedProjects++
			gc.Completed++
			if w != nil {
				w.Completed++
			}

			completedAt := p.CompletedDate.Time()
			if completedAt.IsZero() {
				continue
			}
			local := completedAt.In(now.Location())
			if local.Year() == now.Year() && local.Month() == now.Month() {
				o.CompletedThisMonth++
			}
			if created := p.DateCreated.Time(); !created.IsZero() {
				completionDays += completedAt.Sub(created).Hours() / 24
				timed++
			}
			if CompletedOnTime(p, now.Location()) {
				onTime++
			}
			continue
		}

		o.ActiveProjects++
		gc.Active++
		if w != nil {
			w.Active++
		}
		if IsOverdue(p, now) {
			o.OverdueProjects++
			gc.Overdue++
			if w != nil {
				w.Overdue++
			}
		}
	}

	if timed > 0 {
		o.AvgCompletionDays = math.Round(completionDays/float64(timed)*10) / 10
	}
	if withDate := countCompletedWithDate(projects); withDate > 0 {
		o.CompletionRate = int(math.Round(float64(onTime) * 100 / float64(withDate)))
	}

	for _, n := range names {
		o.WorkloadByPerson = append(o.WorkloadByPerson, *workload[n.ID])
	}
	for _, gc := range byGroup {
		o.ProjectsByGroup = append(o.ProjectsByGroup, *gc)
	}
	sort.Slice(o.ProjectsByGroup, func(i, j int) bool {
		return o.ProjectsByGroup[i].Group < o.ProjectsByGroup[j].Group
	})
	return o
}

func countCompletedWithDate(projects []domain.Project) int {
	count := 0
	for i := range projects {
		if projects[i].Completed && !projects[i].CompletedDate.Time().IsZero() {
			count++
		}
	}
	return count
}

// ComputeTrends counts created and completed projects per calendar month, oldest month first,
// ending with the month of now.
func ComputeTrends(projects []domain.Project, now time.Time, months int) []TrendPoint {
	loc := now.Location()
	points := make([]TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 1, 0)
		point := TrendPoint{Month: start.Format("2006-01")}
		for j := range projects {
			p := &projects[j]
			if within(p.DateCreated.Time(), start, end) {
				point.Created++
			}
			if p.Completed && within(p.CompletedDate.Time(), start, end) {
				point.Completed++
			}
		}
		points = append(points, point)
	}
	return points
}

func within(t, start, end time.Time) bool {
	return !t.IsZero() && !t.Before(start) && t.Before(end)
}
