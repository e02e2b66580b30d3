package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/hsato/studyplan/internal/db"
	"github.com/hsato/studyplan/internal/repository"
	"github.com/hsato/studyplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	db      *sql.DB
	Plans   PlanService
	Profile ProfileService
	Events  EventService
	History HistoryService
	Rules   RulesService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	database := testutil.NewTestDB(t)

	profileRepo := repository.NewSQLiteProfileRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	ruleRepo := repository.NewSQLiteRuleRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	planSvc := NewPlanService(profileRepo, eventRepo, historyRepo, planRepo, ruleRepo)

	return &testApp{
		db:      database,
		Plans:   planSvc,
		Profile: NewProfileService(profileRepo, planRepo, planSvc),
		Events:  NewEventService(eventRepo, planRepo),
		History: NewHistoryService(historyRepo, uow),
		Rules:   NewRulesService(ruleRepo, planRepo, planSvc),
	}
}

func seedProfile(t *testing.T, app *testApp, today time.Time) {
	t.Helper()
	require.NoError(t, app.Profile.Save(context.Background(), testutil.NewTestProfile(), today))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
