package db

import (
	"testing"

	"vitale/internal/models"
)

func TestUpsertCreatesThenReplaces(t *testing.T) {
	repo := NewDailyMetricRepository(openTestDB(t))

	first := models.DailyMetric{
		Date:         "2024-01-01",
		Steps:        8000,
		SleepHours:   7.5,
		DeepSleepMin: 90,
		MinHeartRate: 48,
		MaxHeartRate: 160,
		BodyWeight:   62.3,
	}
	created, err := repo.Upsert(&first)
	if err != nil {
		t.Fatalf("upsert first: %v", err)
	}
	if !created {
		t.Fatal("expected first upsert to create a row")
	}

	second := models.DailyMetric{
		Date:       "2024-01-01",
		Steps:      12000,
		SleepHours: 6,
	}
	created, err = repo.Upsert(&second)
	if err != nil {
		t.Fatalf("upsert second: %v", err)
	}
	if created {
		t.Fatal("expected second upsert to replace, not create")
	}

	stored, found, err := repo.FindByDate("2024-01-01")
	if err != nil {
		t.Fatalf("find by date: %v", err)
	}
	if !found {
		t.Fatal("expected the day to exist")
	}
	if stored.Steps != 12000 || stored.SleepHours != 6 {
		t.Fatalf("expected later import to win, got steps=%d sleep=%v", stored.Steps, stored.SleepHours)
	}
	if stored.DeepSleepMin != 0 || stored.BodyWeight != 0 {
		t.Fatalf("expected replacement to clear fields absent from the later import, got deep=%d weight=%v", stored.DeepSleepMin, stored.BodyWeight)
	}

	all, err := repo.ListAll()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one row for the day, got %d", len(all))
	}
}

func TestFindByDateMissing(t *testing.T) {
	repo := NewDailyMetricRepository(openTestDB(t))

	_, found, err := repo.FindByDate("2024-01-01")
	if err != nil {
		t.Fatalf("find by date: %v", err)
	}
	if found {
		t.Fatal("expected no row for an empty store")
	}
}

func TestListSinceDateFiltersAndOrders(t *testing.T) {
	repo := NewDailyMetricRepository(openTestDB(t))

	for _, day := range []string{"2024-01-03", "2024-01-01", "2024-01-02", "2023-12-31"} {
		if _, err := repo.Upsert(&models.DailyMetric{Date: day}); err != nil {
			t.Fatalf("seed %s: %v", day, err)
		}
	}

	metrics, err := repo.ListSinceDate("2024-01-01")
	if err != nil {
		t.Fatalf("list since date: %v", err)
	}
	if len(metrics) != 3 {
		t.Fatalf("expected 3 rows in window, got %d", len(metrics))
	}
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	for i, metric := range metrics {
		if metric.Date != want[i] {
			t.Fatalf("row %d: expected %s, got %s", i, want[i], metric.Date)
		}
	}
}

func TestLatestWithBodyWeightSkipsZeroRows(t *testing.T) {
	repo := NewDailyMetricRepository(openTestDB(t))

	seed := []models.DailyMetric{
		{Date: "2024-01-01", BodyWeight: 0},
		{Date: "2024-01-02", BodyWeight: 61.8},
		{Date: "2024-01-03", BodyWeight: 62.3},
		{Date: "2024-01-04", BodyWeight: 0},
	}
	for i := range seed {
		if _, err := repo.Upsert(&seed[i]); err != nil {
			t.Fatalf("seed %s: %v", seed[i].Date, err)
		}
	}

	metric, found, err := repo.LatestWithBodyWeight()
	if err != nil {
		t.Fatalf("latest with body weight: %v", err)
	}
	if !found {
		t.Fatal("expected a weighted row to be found")
	}
	if metric.Date != "2024-01-03" || metric.BodyWeight != 62.3 {
		t.Fatalf("expected the most recent positive weight, got %s %v", metric.Date, metric.BodyWeight)
	}
}

func TestLatestWithBodyWeightAllZero(t *testing.T) {
	repo := NewDailyMetricRepository(openTestDB(t))

	for _, day := range []string{"2024-01-01", "2024-01-02"} {
		if _, err := repo.Upsert(&models.DailyMetric{Date: day}); err != nil {
			t.Fatalf("seed %s: %v", day, err)
		}
	}

	_, found, err := repo.LatestWithBodyWeight()
	if err != nil {
		t.Fatalf("latest with body weight: %v", err)
	}
	if found {
		t.Fatal("expected no row when every weight is zero")
	}
}

func TestAverageSleepSince(t *testing.T) {
	repo := NewDailyMetricRepository(openTestDB(t))

	seed := []models.DailyMetric{
		{Date: "2024-01-01", SleepHours: 10},
		{Date: "2024-01-05", SleepHours: 6},
		{Date: "2024-01-06", SleepHours: 8},
	}
	for i := range seed {
		if _, err := repo.Upsert(&seed[i]); err != nil {
			t.Fatalf("seed %s: %v", seed[i].Date, err)
		}
	}

	average, samples, err := repo.AverageSleepSince("2024-01-05")
	if err != nil {
		t.Fatalf("average sleep since: %v", err)
	}
	if samples != 2 {
		t.Fatalf("expected 2 sample days in window, got %d", samples)
	}
	if average != 7 {
		t.Fatalf("expected average 7, got %v", average)
	}
}

func TestAverageSleepSinceEmptyStore(t *testing.T) {
	repo := NewDailyMetricRepository(openTestDB(t))

	average, samples, err := repo.AverageSleepSince("2024-01-01")
	if err != nil {
		t.Fatalf("average sleep since: %v", err)
	}
	if samples != 0 || average != 0 {
		t.Fatalf("expected zero average and zero samples, got %v over %d", average, samples)
	}
}
