package db

import (
	"github.com/pkg/errors"

	"github.com/hamzemohamed32/codementor/internal/profile"
	"github.com/hamzemohamed32/codementor/store"
	"github.com/hamzemohamed32/codementor/store/db/sqlite"
)

// NewDBDriver creates new db driver based on profile. SQLite is the only
// backing today; the Driver indirection keeps orchestration code unaware of
// it so another engine can slot in without touching services.
func NewDBDriver(profile *profile.Profile) (store.Driver, error) {
	var driver store.Driver
	var err error

	switch profile.Driver {
	case "sqlite":
		driver, err = sqlite.NewDB(profile)
	default:
		return nil, errors.Errorf("unknown db driver %q: only 'sqlite' is supported", profile.Driver)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create db driver")
	}
	return driver, nil
}
