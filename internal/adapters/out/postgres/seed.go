package postgres

import (
	"context"
	"fmt"

	"tms/internal/adapters/out/postgres/driverrepo"
	"tms/internal/adapters/out/postgres/userrepo"
	"tms/internal/auth"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"
	"tms/internal/core/domain/services"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedOptions controls the data written on startup.
type SeedOptions struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	// Demo adds sample drivers and orders when no driver exists yet.
	Demo bool
}

// Seed makes sure the admin account exists and optionally loads demo data.
// Running it again changes nothing.
func Seed(ctx context.Context, db *gorm.DB, opts SeedOptions, log logrus.FieldLogger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("component", "seed")

	if opts.AdminEmail != "" {
		hash, err := auth.HashPassword(opts.AdminPassword)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		u, created, err := userrepo.NewGormUserRepository(db).EnsureUser(ctx, opts.AdminName, opts.AdminEmail, hash)
		if err != nil {
			return fmt.Errorf("ensure admin user: %w", err)
		}
		if created {
			log.WithField("email", u.Email).Info("admin user created")
		}
	}

	if !opts.Demo {
		return nil
	}

	var drivers int64
	if err := db.WithContext(ctx).Model(&driverrepo.DriverDTO{}).Count(&drivers).Error; err != nil {
		return err
	}
	if drivers > 0 {
		return nil
	}

	if err := seedDemo(ctx, NewGormUnitOfWorkFactory(db, log)); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	log.WithFields(logrus.Fields{"drivers": len(demoDrivers), "orders": len(demoOrders)}).Info("demo data loaded")
	return nil
}

type demoOrder struct {
	driver    int
	origin    string
	dest      string
	cargo     string
	weight    float64
	status    order.Status
	scheduled string
	notes     string
}

var demoDrivers = []driver.Draft{
	{Name: "Carlos Silva", CPF: "123.456.789-00", CNHNumber: "CNH00001", CNHCategory: "E", Phone: ptr("(11) 91111-1111")},
	{Name: "Ana Souza", CPF: "234.567.890-11", CNHNumber: "CNH00002", CNHCategory: "D", Phone: ptr("(11) 92222-2222")},
	{Name: "Roberto Lima", CPF: "345.678.901-22", CNHNumber: "CNH00003", CNHCategory: "C", Phone: ptr("(11) 93333-3333")},
	{Name: "Fernanda Costa", CPF: "456.789.012-33", CNHNumber: "CNH00004", CNHCategory: "B", Phone: ptr("(11) 94444-4444")},
	{Name: "Marcos Oliveira", CPF: "567.890.123-44", CNHNumber: "CNH00005", CNHCategory: "E", Phone: ptr("(11) 95555-5555")},
}

var demoOrders = []demoOrder{
	{0, "Av. Paulista, 1000 - São Paulo/SP", "Rua das Flores, 200 - Campinas/SP", "Equipamentos eletrônicos", 350, order.Pending, "2025-02-01", ""},
	{1, "Rua Augusta, 500 - São Paulo/SP", "Av. Brasil, 900 - Rio de Janeiro/RJ", "Móveis e utensílios", 800.5, order.Collecting, "2025-02-02", "Cuidado com objetos frágeis"},
	{2, "Rodovia BR-116, Km 10 - Curitiba/PR", "Av. Sete de Setembro, 300 - Curitiba/PR", "Produtos alimentícios", 1200, order.Collected, "2025-02-03", ""},
	{3, "Rua da Consolação, 700 - São Paulo/SP", "Av. Getúlio Vargas, 100 - BH/MG", "Peças automotivas", 600.75, order.Delivering, "2025-02-04", ""},
	{4, "Av. Atlântica, 1500 - Rio de Janeiro", "Rua XV de Novembro, 50 - Florianópolis", "Materiais de construção", 2000, order.Delivered, "2025-02-05", "Entrega concluída"},
	{0, "Av. Ipiranga, 200 - São Paulo/SP", "Rua Coberta, 10 - Porto Alegre/RS", "Vestuário e tecidos", 150, order.Pending, "2025-02-06", ""},
	{1, "Rua Oscar Freire, 300 - São Paulo/SP", "Av. Beira Mar, 400 - Fortaleza/CE", "Produtos químicos", 500, order.Collecting, "2025-02-07", "Produto inflamável"},
	{2, "Rodovia BR-376, Km 5 - Londrina/PR", "Av. Mauá, 600 - Joinville/SC", "Equipamentos industriais", 3000, order.Pending, "2025-02-08", ""},
	{3, "Rua Haddock Lobo, 100 - São Paulo/SP", "Av. Raja Gabaglia, 200 - BH/MG", "Medicamentos", 80, order.Delivered, "2025-02-09", "Temperatura controlada"},
	{4, "Av. do Contorno, 900 - BH/MG", "Rua da Bahia, 1200 - BH/MG", "Bebidas e alimentos", 700, order.Pending, "2025-02-10", ""},
}

func seedDemo(ctx context.Context, factory *GormUnitOfWorkFactory) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverIDs := make([]kernel.UUID, 0, len(demoDrivers))
	for _, draft := range demoDrivers {
		d, err := driver.NewDriver(kernel.NewUUID(), draft)
		if err != nil {
			return err
		}
		if err := uow.DriverRepository().Add(ctx, d); err != nil {
			return err
		}
		driverIDs = append(driverIDs, d.ID())
	}

	generator := services.NewOrderNumberGenerator()
	for _, row := range demoOrders {
		number, err := generator.Next(ctx, uow.OrderNumberSequence())
		if err != nil {
			return err
		}

		draft := order.Draft{
			DriverID:           driverIDs[row.driver].String(),
			OriginAddress:      row.origin,
			DestinationAddress: row.dest,
			CargoDescription:   row.cargo,
			WeightKg:           &row.weight,
			ScheduledDate:      row.scheduled,
		}
		if row.notes != "" {
			draft.Notes = &row.notes
		}

		o, err := order.NewOrder(kernel.NewUUID(), number, draft)
		if err != nil {
			return err
		}
		for o.Status() != row.status {
			if err := o.Advance(); err != nil {
				return err
			}
		}
		if err := uow.OrderRepository().Add(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func ptr(s string) *string {
	return &s
}
