package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	PoolKey      ContextKey = "pool"
	TxKey        ContextKey = "tx"
	TenantIDKey  ContextKey = "tenantID"
	ActorKey     ContextKey = "actor"
	LoggerKey    ContextKey = "logger"
	ParamsKey    ContextKey = "params"
	AppKey       ContextKey = "app"
	RequestStart ContextKey = "requestStart"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())
