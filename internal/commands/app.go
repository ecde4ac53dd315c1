package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kasa-dev/kasa/internal/config"
	"github.com/kasa-dev/kasa/internal/format"
	"github.com/kasa-dev/kasa/internal/model"
	"github.com/kasa-dev/kasa/internal/policy"
	"github.com/kasa-dev/kasa/internal/store"
)

const (
	defaultConfigFile = "kasa.yaml"
	defaultDataFile   = "household.yaml"
)

// app carries the shared state every subcommand runs against: config,
// store, renderer and clock. It is populated once in the root command's
// PersistentPreRunE.
type app struct {
	cfgPath  string
	dataPath string
	verbose  bool

	cfg     *config.Config
	store   *store.Store
	printer *format.Printer
	log     *logrus.Logger
	now     func() time.Time
}

func newApp() *app {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return &app{log: log, now: time.Now}
}

// setup loads environment, config and the household snapshot. Explicitly
// requested files must exist; defaults fall back silently (default config,
// embedded demo data).
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}
	a.log.SetOutput(cmd.ErrOrStderr())

	if a.cfgPath == "" {
		a.cfgPath = os.Getenv("KASA_CONFIG")
	}
	if a.dataPath == "" {
		a.dataPath = os.Getenv("KASA_DATA")
	}

	if err := a.loadConfig(); err != nil {
		return err
	}
	if err := a.loadStore(); err != nil {
		return err
	}

	a.printer = format.NewPrinter(a.cfg.Locale.Tag, a.cfg.Locale.Symbol)
	return nil
}

func (a *app) loadConfig() error {
	path := a.cfgPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path == "" {
		a.log.Debug("no config file, using defaults")
		a.cfg = config.Default("")
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.log.Debugf("loaded config from %s", path)
	a.cfg = cfg
	return nil
}

func (a *app) loadStore() error {
	path := a.dataPath
	if path == "" {
		if _, err := os.Stat(defaultDataFile); err == nil {
			path = defaultDataFile
		}
	}
	if path == "" {
		a.log.Debug("no household file, using embedded demo data")
		s, err := store.Demo(a.log)
		if err != nil {
			return err
		}
		a.store = s
		return nil
	}

	s, err := store.Load(path, a.log)
	if err != nil {
		return fmt.Errorf("loading household: %w", err)
	}
	a.log.Debugf("loaded household from %s", path)
	a.store = s
	return nil
}

// requireManage errors unless the acting member may add household records.
func requireManage(a *app) error {
	user := a.currentUser()
	if !policy.Can(user.Role, policy.CapManageHousehold) {
		return fmt.Errorf("%s (%s) may not manage household records", user.Name, user.Role)
	}
	return nil
}

// currentUser resolves the acting household member: the configured
// current_user if it exists, otherwise the first member on file.
func (a *app) currentUser() model.User {
	if u, ok := a.store.User(a.cfg.Household.CurrentUser); ok {
		return u
	}
	users := a.store.Users()
	if len(users) > 0 {
		return users[0]
	}
	return model.User{}
}
