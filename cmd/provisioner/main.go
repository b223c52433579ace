// Command provisioner is the interactive installer for an alpha-testnet
// sequencer full node. It presents a menu, runs install/start pipelines,
// streams container logs, and queries the node's chain status.
package main

import (
	"context"
	stderrs "errors"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/aztecnode/provisioner/pkg/cli"
	"github.com/aztecnode/provisioner/pkg/config"
	"github.com/aztecnode/provisioner/pkg/errors"
	"github.com/aztecnode/provisioner/pkg/installer"
	"github.com/aztecnode/provisioner/pkg/logging"
	"github.com/aztecnode/provisioner/pkg/session"
)

// version metadata populated via -ldflags at build time
var (
	version = "dev"
	commit  = ""
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("provisioner %s", version)
		if commit != "" {
			fmt.Printf(" (commit %s)", commit)
		}
		fmt.Println()
		return
	}

	logger, err := logging.NewDefaultLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	home, err := os.UserHomeDir()
	if err != nil {
		logger.ComponentError(logging.ComponentProvision, "failed to resolve home directory", zap.Error(err))
		os.Exit(1)
	}

	for {
		choice, err := installer.RunMenu()
		if err != nil {
			logger.ComponentError(logging.ComponentProvision, "menu failed", zap.Error(err))
			os.Exit(1)
		}

		if choice == installer.ChoiceExit {
			fmt.Println("👋 Bye.")
			os.Exit(errors.ExitCode(errors.CodeOK))
		}

		if err := dispatch(choice, home, logger); err != nil {
			if stderrs.Is(err, installer.ErrCancelled) {
				logger.ComponentInfo(logging.ComponentProvision, "installation cancelled")
				continue
			}
			if errors.IsFatal(err) {
				logger.ComponentError(logging.ComponentProvision, "provisioning failed",
					zap.String("code", errors.GetCode(err)), zap.Error(err))
				os.Exit(errors.ExitCode(errors.GetCode(err)))
			}
			logger.ComponentWarn(logging.ComponentRPC, "command failed; returning to menu", zap.Error(err))
		}
	}
}

// dispatch runs one menu action with its own session and interrupt scope.
func dispatch(choice installer.MenuChoice, home string, logger *logging.ColoredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := session.New(os.Stdout)
	composeFile := config.NewGenerator(config.DefaultConfigDir(home)).ComposeFilePath()

	switch choice {
	case installer.ChoiceInstall:
		return cli.HandleInstallCommand(ctx, home, s, &installer.Wizard{})
	case installer.ChoiceLogs:
		return cli.HandleLogsCommand(ctx, s, composeFile)
	case installer.ChoiceStatus:
		return cli.HandleStatusCommand(ctx, s, logger)
	}
	return nil
}
