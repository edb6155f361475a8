package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/clanwatch/clanwatch/internal/config"
	"github.com/clanwatch/clanwatch/internal/notify"
	"github.com/clanwatch/clanwatch/internal/source"
	"github.com/clanwatch/clanwatch/internal/store"
)

// Exit codes observed by the external scheduler.
const (
	ExitOK           = 0
	ExitConfig       = 1
	ExitPersistence  = 2
	ExitFetch        = 3
	ExitNotifierAuth = 4
	ExitTimeout      = 5
	ExitFatal        = 99
)

// ExitCode classifies err into the process exit code taxonomy.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		validation *config.ValidationError
		persist    *store.PersistError
		fetch      *source.FetchError
		auth       *notify.AuthError
	)
	switch {
	case errors.As(err, &validation):
		return ExitConfig
	case errors.As(err, &persist):
		return ExitPersistence
	case errors.As(err, &fetch):
		return ExitFetch
	case errors.As(err, &auth):
		return ExitNotifierAuth
	case errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err):
		return ExitTimeout
	default:
		return ExitFatal
	}
}

// OperatorMessage turns a fatal error into an actionable line for
// whoever reads the scheduler's output, separate from the audit log.
func OperatorMessage(err error) string {
	switch ExitCode(err) {
	case ExitOK:
		return ""
	case ExitConfig:
		return fmt.Sprintf("Configuration problem: %v. Check the CLANWATCH_* environment variables.", err)
	case ExitPersistence:
		return fmt.Sprintf("Database failure: %v. Check the database file and its permissions; no partial changes were committed.", err)
	case ExitFetch:
		return fmt.Sprintf("Could not fetch the hiscores page: %v. Verify CLANWATCH_SOURCE_URL.", err)
	case ExitNotifierAuth:
		return fmt.Sprintf("Discord rejected the bot's credentials: %v. Check the token and the bot's channel/role permissions.", err)
	case ExitTimeout:
		return fmt.Sprintf("Cycle timed out: %v. Consider raising CLANWATCH_TIMEOUT.", err)
	default:
		return fmt.Sprintf("Unexpected failure: %v", err)
	}
}
