package analytics

import (
	"houseprojects/domain"
	"houseprojects/persistence"
	"time"
)

var (
	QueryOverviewFunc = QueryOverview
	QueryTrendsFunc   = QueryTrends
)

func QueryOverview() (*Overview, error) {
	store := persistence.ActiveFileStore
	projects := []domain.Project{}
	if err := store.Load(persistence.CollectionProjects, &projects); err != nil {
		return nil, err
	}
	names := []domain.Name{}
	if err := store.Load(persistence.CollectionNames, &names); err != nil {
		return nil, err
	}
	groups := []domain.Group{}
	if err := store.Load(persistence.CollectionGroups, &groups); err != nil {
		return nil, err
	}
	o := ComputeOverview(projects, names, groups, time.Now())
	return &o, nil
}

func QueryTrends() (*Trends, error) {
	projects := []domain.Project{}
	if err := persistence.ActiveFileStore.Load(persistence.CollectionProjects, &projects); err != nil {
		return nil, err
	}
	return &Trends{Trends: ComputeTrends(projects, time.Now(), TrendMonths)}, nil
}
