package deps

import (
	"time"

	"github.com/linknest/linknest/internal/logger"
	"github.com/linknest/linknest/internal/mutate"
	"github.com/linknest/linknest/internal/portable"
	"github.com/linknest/linknest/internal/prefs"
	"github.com/linknest/linknest/internal/state"
	"github.com/linknest/linknest/internal/store/bolt"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Store     *bolt.Store       // embedded database gateway
	State     *state.State      // in-memory cache + view parameters
	Mutations *mutate.Service   // item/category writes
	Portable  *portable.Service // import/export
	Prefs     *prefs.Prefs      // theme preference, stored outside the DB
}
