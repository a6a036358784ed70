package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate: Create tables and indexes in the configured store
// - sweep:   Expire overdue offers once
// - token:   Issue an access token for a user

func main() {
	// Subcommand definitions
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	sweepCmd := flag.NewFlagSet("sweep", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	// migrate parameters
	migrateDriver := migrateCmd.String("driver", "", "Store driver to migrate (postgres, mongo); defaults to config")

	// sweep parameters
	sweepDriver := sweepCmd.String("driver", "", "Store driver to sweep (postgres, mongo); defaults to config")

	// token parameters
	tokenUser := tokenCmd.String("user", "", "User ID (UUID) to issue the token for")
	tokenRoles := tokenCmd.String("roles", "user", "Comma-separated roles to embed in the token")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := ctlFlags{
		Migrate: storeFlags{
			cmd:    migrateCmd,
			driver: migrateDriver,
		},
		Sweep: storeFlags{
			cmd:    sweepCmd,
			driver: sweepDriver,
		},
		Token: tokenFlags{
			cmd:   tokenCmd,
			user:  tokenUser,
			roles: tokenRoles,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Migrate storeFlags
	Sweep   storeFlags
	Token   tokenFlags
}

type storeFlags struct {
	cmd    *flag.FlagSet
	driver *string
}

type tokenFlags struct {
	cmd   *flag.FlagSet
	user  *string
	roles *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		return handleMigrate(ctx, flags)
	case "sweep":
		return handleSweep(ctx, flags)
	case "token":
		return handleToken(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleMigrate(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	return runMigrate(ctx, *flags.Migrate.driver)
}

func handleSweep(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Sweep.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse sweep flags")
	}

	return runSweep(ctx, *flags.Sweep.driver)
}

func handleToken(flags *ctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	if *flags.Token.user == "" {
		return errors.New("--user flag is required for token command")
	}

	return runToken(*flags.Token.user, *flags.Token.roles)
}

func printUsage() {
	fmt.Println("Usage: marketctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate     Create tables and indexes in the configured store")
	fmt.Println("  sweep       Expire overdue offers once")
	fmt.Println("  token       Issue an access token for a user")
	fmt.Println("")
	fmt.Println("Use 'marketctl <command> -h' for more information about a command.")
}
