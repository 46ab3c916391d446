package mediasvc

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peoplesmarkets/media/auth"
	"github.com/peoplesmarkets/media/log"
	"github.com/peoplesmarkets/media/objstore/objcli"
)

// Service is the orchestrator described in spec §4.4/§4.5: it owns the choreography between the relational store
// and the object store and enforces the §4.3 access rules via its 'auth.Grant' collaborator.
type Service struct {
	pool     *pgxpool.Pool
	objStore objcli.Client
	grant    *auth.Grant
	cfg      Config
	log      log.WrappedLogger
}

// New builds a 'Service' from its collaborators.
func New(pool *pgxpool.Pool, objStore objcli.Client, grant *auth.Grant, cfg Config, logger log.Logger) *Service {
	return &Service{
		pool:     pool,
		objStore: objStore,
		grant:    grant,
		cfg:      cfg,
		log:      log.NewWrappedLogger(logger),
	}
}
