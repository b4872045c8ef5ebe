package main

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	adapterCatalog "github.com/RocketManDan1/Frontier-sub001/internal/adapters/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/adapters/persistence"
	boostApp "github.com/RocketManDan1/Frontier-sub001/internal/application/boost"
	boostCommands "github.com/RocketManDan1/Frontier-sub001/internal/application/boost/commands"
	boostQueries "github.com/RocketManDan1/Frontier-sub001/internal/application/boost/queries"
	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	economyApp "github.com/RocketManDan1/Frontier-sub001/internal/application/economy"
	economyCommands "github.com/RocketManDan1/Frontier-sub001/internal/application/economy/commands"
	economyQueries "github.com/RocketManDan1/Frontier-sub001/internal/application/economy/queries"
	inventoryApp "github.com/RocketManDan1/Frontier-sub001/internal/application/inventory"
	inventoryQueries "github.com/RocketManDan1/Frontier-sub001/internal/application/inventory/queries"
	prospectingCommands "github.com/RocketManDan1/Frontier-sub001/internal/application/prospecting/commands"
	prospectingQueries "github.com/RocketManDan1/Frontier-sub001/internal/application/prospecting/queries"
	routingCommands "github.com/RocketManDan1/Frontier-sub001/internal/application/routing/commands"
	routingQueries "github.com/RocketManDan1/Frontier-sub001/internal/application/routing/queries"
	"github.com/RocketManDan1/Frontier-sub001/internal/application/setup"
	shipdesignCommands "github.com/RocketManDan1/Frontier-sub001/internal/application/shipdesign/commands"
	shipdesignQueries "github.com/RocketManDan1/Frontier-sub001/internal/application/shipdesign/queries"
	transitCommands "github.com/RocketManDan1/Frontier-sub001/internal/application/transit/commands"
	transitQueries "github.com/RocketManDan1/Frontier-sub001/internal/application/transit/queries"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/internal/infrastructure/config"
	"github.com/RocketManDan1/Frontier-sub001/internal/infrastructure/database"
)

// app holds the fully wired simulation core.
type app struct {
	cfg      *config.Config
	db       *gorm.DB
	registry *catalog.Registry
	clock    *shared.GameClock
	mediator common.Mediator

	locations   *persistence.LocationRepositoryGORM
	ships       *persistence.ShipRepositoryGORM
	meta        *persistence.MetaRepositoryGORM
	inventories *persistence.InventoryRepositoryGORM
	economies   *persistence.EconomyRepositoryGORM
	prospecting *persistence.ProspectingRepositoryGORM
	matrix      *persistence.MatrixRepositoryGORM
}

// newApp connects the store and wires every repository, service and
// handler. It does not seed or migrate; callers decide that.
func newApp(cfg *config.Config) (*app, error) {
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	registry, err := catalog.NewRegistry(adapterCatalog.NewBuiltinSource())
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	a := &app{
		cfg:      cfg,
		db:       db,
		registry: registry,
		clock:    shared.NewGameClock(shared.NewRealClock(), cfg.Game.TimeScale),
		mediator: common.NewMediator(),

		locations:   persistence.NewLocationRepository(db),
		ships:       persistence.NewShipRepository(db, registry),
		meta:        persistence.NewMetaRepository(db),
		inventories: persistence.NewInventoryRepository(db),
		economies:   persistence.NewEconomyRepository(db),
		prospecting: persistence.NewProspectingRepository(db),
		matrix:      persistence.NewMatrixRepository(db),
	}

	if err := a.registerHandlers(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *app) registerHandlers() error {
	inventorySvc := inventoryApp.NewService(a.inventories, a.registry, a.clock)
	economySvc := economyApp.NewService(a.economies, a.clock)
	boostSvc := boostApp.NewService(a.registry, a.economies)
	uow := persistence.NewUnitOfWork(a.db)

	med := a.mediator

	if err := common.RegisterHandler[*routingCommands.RegenerateMatrixCommand](med,
		routingCommands.NewRegenerateMatrixHandler(a.locations, a.matrix, a.meta)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*routingQueries.GetRouteQuery](med,
		routingQueries.NewGetRouteHandler(a.matrix)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*routingQueries.ListRoutesFromQuery](med,
		routingQueries.NewListRoutesFromHandler(a.matrix)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*transitCommands.DispatchShipCommand](med,
		transitCommands.NewDispatchShipHandler(a.ships, a.matrix, a.clock)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*transitCommands.SettleArrivalsCommand](med,
		transitCommands.NewSettleArrivalsHandler(a.ships, a.clock)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*transitQueries.GetShipStatusQuery](med,
		transitQueries.NewGetShipStatusHandler(a.ships, a.clock)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*inventoryQueries.InventoryAtQuery](med,
		inventoryQueries.NewInventoryAtHandler(a.inventories)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*economyCommands.HireTeamCommand](med,
		economyCommands.NewHireTeamHandler(economySvc, uow)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*economyCommands.FireTeamCommand](med,
		economyCommands.NewFireTeamHandler(a.economies)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*economyCommands.UnlockTechCommand](med,
		economyCommands.NewUnlockTechHandler(economySvc, uow)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*economyQueries.GetOrgStatusQuery](med,
		economyQueries.NewGetOrgStatusHandler(economySvc)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*boostCommands.BoostItemCommand](med,
		boostCommands.NewBoostItemHandler(economySvc, boostSvc, inventorySvc, a.registry, a.cfg.Game.LeoLocationID, uow)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*boostQueries.BoostableItemsQuery](med,
		boostQueries.NewBoostableItemsHandler(boostSvc)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*prospectingCommands.ProspectSiteCommand](med,
		prospectingCommands.NewProspectSiteHandler(a.ships, a.locations, a.prospecting, a.clock, uow)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*prospectingQueries.GetSiteViewQuery](med,
		prospectingQueries.NewGetSiteViewHandler(a.locations, a.prospecting)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*shipdesignQueries.StatsPreviewQuery](med,
		shipdesignQueries.NewStatsPreviewHandler(a.registry)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*shipdesignCommands.DeconstructShipCommand](med,
		shipdesignCommands.NewDeconstructShipHandler(a.ships, inventorySvc, uow)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*shipdesignCommands.RefuelShipCommand](med,
		shipdesignCommands.NewRefuelShipHandler(a.ships, inventorySvc, uow)); err != nil {
		return err
	}

	return nil
}

// bootstrap migrates the schema and runs the startup sequence.
func (a *app) bootstrap(ctx context.Context) error {
	if err := database.AutoMigrate(a.db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return setup.Run(ctx, setup.Dependencies{
		Locations: a.locations,
		Ships:     a.ships,
		Meta:      a.meta,
		Registry:  a.registry,
		Clock:     a.clock,
		Mediator:  a.mediator,
		Config:    a.cfg,
	})
}

func (a *app) close() {
	_ = database.Close(a.db)
}
