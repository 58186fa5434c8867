package routes

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"foampro/internal/adapter/appscript"
	"foampro/internal/adapter/document"
	"foampro/internal/adapter/emailservice"
	"foampro/internal/adapter/http/handlers"
	"foampro/internal/adapter/persistence/localstate"
	"foampro/internal/adapter/persistence/repository"
	"foampro/internal/adapter/scriptbackend"
	"foampro/internal/config"
	"foampro/internal/domain/entities"
	"foampro/internal/infrastructure/database"
	"foampro/internal/infrastructure/payments"
	"foampro/internal/usecase"
	"foampro/internal/usecase/interfaces"
)

type repositories struct {
	estimates interfaces.IEstimateRepository
	customers interfaces.ICustomerRepository
	warehouse interfaces.IWarehouseRepository
	equipment interfaces.IEquipmentRepository
	orders    interfaces.IPurchaseOrderRepository
	usage     interfaces.IMaterialUsageRepository
	payments  interfaces.IBillingPaymentRepository
}

type app struct {
	estimate  *handlers.EstimateHandler
	payment   *handlers.BillingPaymentHandler
	crew      *handlers.CrewHandler
	customer  *handlers.CustomerHandler
	warehouse *handlers.WarehouseHandler
	account   *handlers.AccountHandler
	sync      *handlers.SyncHandler

	crewUseCase usecase.ICrewUseCase
	localState  *sql.DB
}

func newRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	if cfg.StorageDriver != config.StorageDynamoDB {
		slog.Info("using in-memory storage", "component", "routes")
		return repositories{
			estimates: repository.NewEstimateMemoryRepository(),
			customers: repository.NewCustomerMemoryRepository(),
			warehouse: repository.NewWarehouseMemoryRepository(),
			equipment: repository.NewEquipmentMemoryRepository(),
			orders:    repository.NewPurchaseOrderMemoryRepository(),
			usage:     repository.NewMaterialUsageMemoryRepository(),
			payments:  repository.NewBillingPaymentMemoryRepository(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return repositories{}, err
	}
	t := cfg.Tables
	if err := database.EnsureTables(ctx, ddb, []database.TableSpec{
		{Name: t.Estimates, Indexes: repository.EstimateIndexes},
		{Name: t.Customers},
		{Name: t.Warehouse},
		{Name: t.Equipment},
		{Name: t.PurchaseOrders},
		{Name: t.UsageLog, Indexes: repository.UsageLogIndexes},
		{Name: t.Payments, Indexes: repository.PaymentIndexes},
	}); err != nil {
		return repositories{}, fmt.Errorf("ensure dynamodb tables: %w", err)
	}

	return repositories{
		estimates: repository.NewEstimateDynamoRepository(ddb, t.Estimates),
		customers: repository.NewCustomerDynamoRepository(ddb, t.Customers),
		warehouse: repository.NewWarehouseDynamoRepository(ddb, t.Warehouse),
		equipment: repository.NewEquipmentDynamoRepository(ddb, t.Equipment),
		orders:    repository.NewPurchaseOrderDynamoRepository(ddb, t.PurchaseOrders),
		usage:     repository.NewMaterialUsageDynamoRepository(ddb, t.UsageLog),
		payments:  repository.NewBillingPaymentDynamoRepository(ddb, t.Payments),
	}, nil
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	db, err := database.OpenSQLite(cfg.LocalStatePath)
	if err != nil {
		return nil, err
	}
	if err := localstate.Up(db); err != nil {
		db.Close()
		return nil, err
	}
	timers := localstate.NewTimerStore(db)

	// Unconfigured collaborators stay nil so the use cases report them as
	// disabled instead of failing on every call.
	var backend interfaces.IFieldBackend
	if cfg.ScriptBackendURL != "" {
		backend = scriptbackend.New(appscript.NewClient(cfg.ScriptBackendURL, nil, "script_backend"), cfg.SpreadsheetID, cfg.DriveFolderID)
	}
	var email interfaces.IEmailSender
	if cfg.EmailServiceURL != "" {
		email = emailservice.New(appscript.NewClient(cfg.EmailServiceURL, nil, "email_service"))
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		slog.Warn("mercado pago gateway not configured", "component", "routes", "err", err)
	} else {
		gateway = mp
	}

	costs := entities.ChemicalCosts{
		OpenCell:   cfg.Estimator.OpenCellCost,
		ClosedCell: cfg.Estimator.ClosedCellCost,
		LaborRate:  cfg.Estimator.LaborRate,
	}

	estimateUseCase := usecase.NewEstimateUseCase(repos.estimates, usecase.EstimateCollaborators{
		Customers: repos.customers,
		Warehouse: repos.warehouse,
		Backend:   backend,
		Renderer:  document.NewRenderer(),
		Email:     email,
	}, usecase.EstimateSettings{
		Yields:    entities.Yields{OpenCell: cfg.Estimator.OpenCellYield, ClosedCell: cfg.Estimator.ClosedCellYield},
		Costs:     costs,
		Tolerance: cfg.DiscrepancyTolerance,
		Company:   entities.CompanyProfile{CompanyName: cfg.CompanyName},
	})

	paymentUseCase := usecase.NewBillingPaymentUseCase(repos.payments, repos.estimates, gateway, backend, usecase.PaymentSettings{
		Mock:            cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	})

	syncUseCase := usecase.NewSyncUseCase(backend, repos.estimates, repos.customers, repos.warehouse, repos.equipment)

	var refresh func(ctx context.Context) error
	if backend != nil {
		refresh = func(ctx context.Context) error {
			_, err := syncUseCase.SyncDown(ctx)
			return err
		}
	}
	crewUseCase := usecase.NewCrewUseCase(repos.estimates, usecase.CrewStores{
		Warehouse: repos.warehouse,
		Usage:     repos.usage,
		Equipment: repos.equipment,
		Timers:    timers,
	}, backend, refresh, cfg.CrewSyncInterval)
	// clocks left running before a restart hold the sync gate
	if _, err := crewUseCase.RestoreTimers(ctx); err != nil {
		slog.Warn("crew timers not restored", "component", "routes", "err", err)
	}

	customerUseCase := usecase.NewCustomerUseCase(repos.customers, repos.estimates, email)
	warehouseUseCase := usecase.NewWarehouseUseCase(usecase.WarehouseStores{
		Items:     repos.warehouse,
		Equipment: repos.equipment,
		Orders:    repos.orders,
		Usage:     repos.usage,
		Estimates: repos.estimates,
	}, costs)
	accountUseCase := usecase.NewAccountUseCase(email, cfg.CompanyName, cfg.CrewPin)

	return &app{
		estimate:    handlers.NewEstimateHandler(estimateUseCase),
		payment:     handlers.NewBillingPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock),
		crew:        handlers.NewCrewHandler(crewUseCase),
		customer:    handlers.NewCustomerHandler(customerUseCase),
		warehouse:   handlers.NewWarehouseHandler(warehouseUseCase),
		account:     handlers.NewAccountHandler(accountUseCase),
		sync:        handlers.NewSyncHandler(syncUseCase),
		crewUseCase: crewUseCase,
		localState:  db,
	}, nil
}
