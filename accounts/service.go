package accounts

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/accounts/business/account"
	"encore.app/accounts/business/region"
	"encore.app/accounts/repository"
	"encore.app/accounts/task"
	"encore.app/accounts/upstream"
	"encore.app/accounts/workflow"
)

var accountsDB = sqldb.NewDatabase("accounts", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

// defaultCacheTTL is how long a refreshed account record stays fresh.
const defaultCacheTTL = 24 * time.Hour

//encore:service
type Service struct {
	business   account.Business
	regions    region.Business
	dispatcher task.Dispatcher

	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](accountsDB)

	repo := repository.NewRepository(pgxdb)
	accountBusiness := account.NewAccountBusiness(repo.Accounts, upstream.NewClient(), defaultCacheTTL)
	regionBusiness := region.NewRegionBusiness(repo.Regions)

	c, err := client.Dial(client.Options{HostPort: temporalHostPort()})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	workflow.SetActivityDependencies(accountBusiness)

	w := worker.New(c, task.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.AccountRefresh)
	w.RegisterActivity(workflow.RefreshAccountActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("accounts service initialized", "task_queue", task.TaskQueue)

	return &Service{
		business:   accountBusiness,
		regions:    regionBusiness,
		dispatcher: task.NewTemporalDispatcher(c),
		temporal:   c,
		worker:     w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}

func temporalHostPort() string {
	if hostPort := os.Getenv("TEMPORAL_HOSTPORT"); hostPort != "" {
		return hostPort
	}
	return client.DefaultHostPort
}
