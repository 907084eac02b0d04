package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/portside-labs/vessel-ops/internal/config"
	"github.com/portside-labs/vessel-ops/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
}
