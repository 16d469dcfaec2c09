package cmd

import (
	"log/slog"
	"math/rand"
	"time"

	httpin "mestrack/internal/adapters/in/http"
	"mestrack/internal/adapters/out/postgres"
	"mestrack/internal/adapters/out/ws"
	"mestrack/internal/core/application/usecases/commands"
	"mestrack/internal/core/application/usecases/queries"
	"mestrack/internal/core/domain/services"
	"mestrack/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services and use case handlers.
// Each Create method builds a fresh handler; handlers are stateless values
// and safe to recreate per request.
type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	hub         *ws.Hub
	qualityGate services.QualityGate
	estimator   services.OEEEstimator
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, hub *ws.Hub) CompositionRoot {
	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:         hub,
		qualityGate: services.NewQualityGate(config.DefectRateThreshold),
		estimator:   services.NewSimulatedOEEEstimator(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteProcessCommandHandler() commands.CompleteProcessCommandHandler {
	var f commands.ProcessingUoWFactory = FuncProcessingUoWFactory(func() commands.ProcessingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteProcessCommandHandler(f, c.hub, c.qualityGate)
}

func (c *CompositionRoot) CreateCreateLotCommandHandler() commands.CreateLotCommandHandler {
	var f commands.LotUoWFactory = FuncLotUoWFactory(func() commands.LotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLotCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLotStatusCommandHandler() commands.UpdateLotStatusCommandHandler {
	var f commands.LotUoWFactory = FuncLotUoWFactory(func() commands.LotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateLotStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAddLotHistoryCommandHandler() commands.AddLotHistoryCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddLotHistoryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateInspectionCommandHandler() commands.CreateInspectionCommandHandler {
	var f commands.InspectionUoWFactory = FuncInspectionUoWFactory(func() commands.InspectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInspectionCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteInspectionCommandHandler() commands.CompleteInspectionCommandHandler {
	var f commands.InspectionUoWFactory = FuncInspectionUoWFactory(func() commands.InspectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteInspectionCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStandardCommandHandler() commands.CreateStandardCommandHandler {
	var f commands.InspectionUoWFactory = FuncInspectionUoWFactory(func() commands.InspectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStandardCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateEquipmentCommandHandler() commands.CreateEquipmentCommandHandler {
	var f commands.EquipmentUoWFactory = FuncEquipmentUoWFactory(func() commands.EquipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEquipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordTelemetryCommandHandler() commands.RecordTelemetryCommandHandler {
	var f commands.EquipmentUoWFactory = FuncEquipmentUoWFactory(func() commands.EquipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordTelemetryCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateGetLotsQueryHandler() queries.GetLotsQueryHandler {
	return queries.NewGetLotsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLotQueryHandler() queries.GetLotQueryHandler {
	return queries.NewGetLotQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLotHistoryQueryHandler() queries.GetLotHistoryQueryHandler {
	return queries.NewGetLotHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInspectionsQueryHandler() queries.GetInspectionsQueryHandler {
	return queries.NewGetInspectionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStandardsQueryHandler() queries.GetStandardsQueryHandler {
	return queries.NewGetStandardsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEquipmentQueryHandler() queries.GetEquipmentQueryHandler {
	return queries.NewGetEquipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductionStatisticsQueryHandler() queries.GetProductionStatisticsQueryHandler {
	return queries.NewGetProductionStatisticsQueryHandler(c.gormDB, c.estimator)
}

// CreateHTTPServer assembles the REST server with all handlers wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateProduct:      c.CreateCreateProductCommandHandler(),
		CreateWorkOrder:    c.CreateCreateWorkOrderCommandHandler(),
		CompleteProcess:    c.CreateCompleteProcessCommandHandler(),
		CreateLot:          c.CreateCreateLotCommandHandler(),
		UpdateLotStatus:    c.CreateUpdateLotStatusCommandHandler(),
		AddLotHistory:      c.CreateAddLotHistoryCommandHandler(),
		CreateInspection:   c.CreateCreateInspectionCommandHandler(),
		CompleteInspection: c.CreateCompleteInspectionCommandHandler(),
		CreateStandard:     c.CreateCreateStandardCommandHandler(),
		CreateEquipment:    c.CreateCreateEquipmentCommandHandler(),
		RecordTelemetry:    c.CreateRecordTelemetryCommandHandler(),

		GetLots:        c.CreateGetLotsQueryHandler(),
		GetLot:         c.CreateGetLotQueryHandler(),
		GetLotHistory:  c.CreateGetLotHistoryQueryHandler(),
		GetInspections: c.CreateGetInspectionsQueryHandler(),
		GetStandards:   c.CreateGetStandardsQueryHandler(),
		GetEquipment:   c.CreateGetEquipmentQueryHandler(),
		GetDashboard:   c.CreateGetDashboardQueryHandler(),
		GetStatistics:  c.CreateGetProductionStatisticsQueryHandler(),
	}, c.hub)
}

// CreateJobManager assembles the background jobs. The equipment simulator is
// only constructed when enabled in the configuration.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	broadcastJob := jobs.NewDashboardBroadcastJob(
		c.CreateGetDashboardQueryHandler(), c.hub, logger,
	)

	var simulatorJob *jobs.EquipmentSimulatorJob
	if c.config.EnableEquipmentSimulator {
		simulatorJob = jobs.NewEquipmentSimulatorJob(
			c.CreateRecordTelemetryCommandHandler(),
			c.CreateGetEquipmentQueryHandler(),
			rand.New(rand.NewSource(time.Now().UnixNano())),
			logger,
		)
	}

	return jobs.NewJobManager(broadcastJob, simulatorJob)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncProcessingUoWFactory func() commands.ProcessingUoW

func (f FuncProcessingUoWFactory) Create() commands.ProcessingUoW {
	return f()
}

type FuncLotUoWFactory func() commands.LotUoW

func (f FuncLotUoWFactory) Create() commands.LotUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncInspectionUoWFactory func() commands.InspectionUoW

func (f FuncInspectionUoWFactory) Create() commands.InspectionUoW {
	return f()
}

type FuncEquipmentUoWFactory func() commands.EquipmentUoW

func (f FuncEquipmentUoWFactory) Create() commands.EquipmentUoW {
	return f()
}
