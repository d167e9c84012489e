// Command seedrates loads the default honorarium rate table. Run it once per
// environment; reruns update amounts in place.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/gradadmin-backend/internal/data/db"
	paymentrepo "github.com/yungbote/gradadmin-backend/internal/data/repos/payment"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

type seedRate struct {
	level  types.ProgramLevel
	role   types.RateRole
	amount float64
}

var defaultRates = []seedRate{
	{types.LevelMasteral, types.RoleAdviser, 1500},
	{types.LevelMasteral, types.RolePanelChair, 1200},
	{types.LevelMasteral, types.PanelMemberRole(1), 1000},
	{types.LevelDoctorate, types.RoleAdviser, 2500},
	{types.LevelDoctorate, types.RolePanelChair, 2000},
	{types.LevelDoctorate, types.PanelMemberRole(1), 1800},
}

var defenseTypes = []types.DefenseType{
	types.DefenseProposal,
	types.DefensePreFinal,
	types.DefenseFinal,
}

func main() {
	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres automigrate failed", "error", err)
	}

	rateRepo := paymentrepo.NewRateRepo(pg.DB(), log)
	dbc := dbctx.Context{Ctx: context.Background()}

	seeded := 0
	for _, dt := range defenseTypes {
		for _, r := range defaultRates {
			row := &types.PaymentRate{
				ProgramLevel: string(r.level),
				DefenseType:  string(dt),
				Role:         string(r.role),
				Amount:       r.amount,
			}
			if err := rateRepo.Upsert(dbc, row); err != nil {
				log.Fatal("Seed rate failed", "error", err, "level", r.level, "defense_type", dt, "role", r.role)
			}
			seeded++
		}
	}
	log.Info("Rate table seeded", "rows", seeded)
}
