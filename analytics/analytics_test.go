package analytics_test

import (
	"encoding/json"
	"houseprojects/analytics"
	"houseprojects/common"
	"houseprojects/domain"
	"testing"
	"time"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/gomega"
)

func at(year int, month time.Month, day, hour int) types.Timestamp {
	return common.TimestampOf(time.Date(year, month, day, hour, 0, 0, 0, time.UTC))
}

func fixture() ([]domain.Project, []domain.Name, []domain.Group) {
	names := []domain.Name{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}
	groups := []domain.Group{{ID: 10, Name: "Garden"}, {ID: 11, Name: "Kitchen"}}
	projects := []domain.Project{
		{ID: 100, NameID: 1, Group: "Garden", DueDate: domain.DateOf(2026, 10, 10), DateCreated: at(2026, 10, 1, 8)},
		{ID: 101, NameID: 1, Group: "Kitchen", DueDate: domain.DateOf(2026, 10, 25), DateCreated: at(2026, 9, 15, 8)},
		{ID: 102, NameID: 2, Group: "Garden", DueDate: domain.DateOf(2026, 10, 6), DateCreated: at(2026, 10, 1, 12),
			Completed: true, CompletedDate: at(2026, 10, 5, 12)},
		{ID: 103, NameID: 2, Group: "Garden", DueDate: domain.DateOf(2026, 8, 15), DateCreated: at(2026, 8, 10, 12),
			Completed: true, CompletedDate: at(2026, 8, 20, 12)},
		{ID: 104, NameID: 99, Group: "Attic", DueDate: domain.DateOf(2026, 10, 18), DateCreated: at(2026, 4, 20, 12)},
	}
	return projects, names, groups
}

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func TestComputeOverview(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should aggregate collections", func(t *testing.T) {
		projects, names, groups := fixture()
		o := analytics.ComputeOverview(projects, names, groups, now)

		Expect(o).To(Equal(analytics.Overview{
			TotalProjects:      5,
			ActiveProjects:     3,
			CompletedProjects:  2,
			OverdueProjects:    1,
			CompletedThisMonth: 1,
			AvgCompletionDays:  7,
			CompletionRate:     50,
			TotalNames:         2,
			TotalGroups:        2,
			WorkloadByPerson: []analytics.PersonWorkload{
				{NameID: 1, Name: "Alice", Active: 2, Completed: 0, Overdue: 1},
				{NameID: 2, Name: "Bob", Active: 0, Completed: 2, Overdue: 0},
			},
			ProjectsByGroup: []analytics.GroupCount{
				{Group: "Attic", Total: 1, Active: 1},
				{Group: "Garden", Total: 3, Active: 1, Completed: 2, Overdue: 1},
				{Group: "Kitchen", Total: 1, Active: 1},
			},
		}))
	})

	t.Run("should not count project due today as overdue", func(t *testing.T) {
		p := domain.Project{DueDate: domain.DateOfTime(now)}
		Expect(analytics.IsOverdue(&p, now)).To(BeFalse())
		p.DueDate = domain.DateOfTime(now.AddDate(0, 0, -1))
		Expect(analytics.IsOverdue(&p, now)).To(BeTrue())
		p.Completed = true
		Expect(analytics.IsOverdue(&p, now)).To(BeFalse())
	})

	t.Run("should treat completion on due day as on time", func(t *testing.T) {
		p := domain.Project{DueDate: domain.DateOf(2026, 10, 5), Completed: true, CompletedDate: at(2026, 10, 5, 23)}
		Expect(analytics.CompletedOnTime(&p, time.UTC)).To(BeTrue())
		p.CompletedDate = at(2026, 10, 6, 0)
		Expect(analytics.CompletedOnTime(&p, time.UTC)).To(BeFalse())
	})

	t.Run("should round average completion days to one decimal", func(t *testing.T) {
		projects := []domain.Project{
			{Completed: true, DateCreated: at(2026, 10, 1, 0), CompletedDate: at(2026, 10, 2, 8)},
		}
		o := analytics.ComputeOverview(projects, nil, nil, now)
		Expect(o.AvgCompletionDays).To(Equal(1.3))
		Expect(o.CompletionRate).To(Equal(100))
	})

	t.Run("should handle empty collections without division", func(t *testing.T) {
		o := analytics.ComputeOverview(nil, nil, nil, now)
		Expect(o.CompletionRate).To(Equal(100))
		Expect(o.AvgCompletionDays).To(BeZero())
		Expect(o.TotalProjects + o.ActiveProjects + o.CompletedProjects + o.OverdueProjects).To(BeZero())

		b, err := json.Marshal(o)
		Expect(err).To(BeNil())
		Expect(string(b)).To(MatchJSON(`{"totalProjects":0,"activeProjects":0,"completedProjects":0,
			"overdueProjects":0,"completedThisMonth":0,"avgCompletionDays":0,"completionRate":100,
			"totalNames":0,"totalGroups":0,"workloadByPerson":[],"projectsByGroup":[]}`))
	})
}

func TestComputeTrends(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should count six months oldest first", func(t *testing.T) {
		projects, _, _ := fixture()
		Expect(analytics.ComputeTrends(projects, now, analytics.TrendMonths)).To(Equal([]analytics.TrendPoint{
			{Month: "2026-05"},
			{Month: "2026-06"},
			{Month: "2026-07"},
			{Month: "2026-08", Created: 1, Completed: 1},
			{Month: "2026-09", Created: 1},
			{Month: "2026-10", Created: 2, Completed: 1},
		}))
	})

	t.Run("should wrap across year border", func(t *testing.T) {
		points := analytics.ComputeTrends(nil, time.Date(2027, 2, 10, 0, 0, 0, 0, time.UTC), 6)
		months := []string{}
		for _, p := range points {
			months = append(months, p.Month)
		}
		Expect(months).To(Equal([]string{"2026-09", "2026-10", "2026-11", "2026-12", "2027-01", "2027-02"}))
	})
}
