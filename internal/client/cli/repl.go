package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the command surface the REPL needs to operate. The
// real App type satisfies this interface; tests can provide a lightweight
// stub.
type execIface interface {
	isConnected() bool
	Connect(ctx context.Context, backend string) error
	Disconnect(ctx context.Context) error
	Wallet(ctx context.Context) error
	List(ctx context.Context) error
	Mine(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Show(ctx context.Context, id string) error
	Donators(ctx context.Context, id string) error
	Image(ctx context.Context, id string) error
	Create(ctx context.Context) error
	Update(ctx context.Context, id string) error
	Donate(ctx context.Context, id, amount string) error
	Withdraw(ctx context.Context, id, amount string) error
	Pause(ctx context.Context, id string) error
	Resume(ctx context.Context, id string) error
	End(ctx context.Context, id string) error
	AdminList(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	Events(ctx context.Context, id string) error
	Watch(ctx context.Context, id string) error
	Unwatch(ctx context.Context) error
	About(ctx context.Context) error
	HowTo(ctx context.Context) error
}

const helpConnected = `Available commands:
  list | l            visible campaigns
  mine                campaigns you own
  search <text>       filter by title or description
  show <id>           campaign details
  donators <id>       donation list
  image <id>          download the campaign image
  donate <id> <avax>  contribute to a campaign
  create              start a new campaign
  update <id>         edit your campaign
  withdraw <id> <avax>  withdraw raised funds
  pause|resume|end <id> manage your campaign
  admin               all campaigns including deleted (contract owner)
  delete|restore <id> soft-delete management (contract owner)
  events <id>         full event history
  watch <id>          follow a campaign's events live
  unwatch             stop following
  wallet              connected account and balance
  disconnect          drop the wallet session
  about               build information
  howto               how donating works
  exit | quit         leave the program`

const helpDisconnected = `Available commands:
  list | l            visible campaigns
  search <text>       filter by title or description
  show <id>           campaign details
  donators <id>       donation list
  image <id>          download the campaign image
  events <id>         full event history
  watch <id>          follow a campaign's events live
  unwatch             stop following
  connect [backend]   connect a wallet (keystore, walletrpc)
  about               build information
  howto               how donating works
  exit | quit         leave the program`

// runREPL starts a simple read-eval-print loop for the CryptoFundit CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Reading commands work without a wallet; anything that submits a
// transaction tells the user to connect first. Errors returned by command
// handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	report := func(err error) {
		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}

	for {
		printlnFn(fmt.Sprintf("cf> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := func(i int) string {
			if i < len(args) {
				return args[i]
			}
			return ""
		}

		switch cmd {
		case "help":
			if a.isConnected() {
				printlnFn(helpConnected)
			} else {
				printlnFn(helpDisconnected)
			}

		case "connect":
			report(a.Connect(ctx, arg(0)))

		case "disconnect":
			report(a.Disconnect(ctx))

		case "wallet":
			report(a.Wallet(ctx))

		case "l", "list":
			report(a.List(ctx))

		case "mine":
			report(a.Mine(ctx))

		case "search":
			report(a.Search(ctx, strings.Join(args, " ")))

		case "show":
			report(a.Show(ctx, arg(0)))

		case "donators":
			report(a.Donators(ctx, arg(0)))

		case "image":
			report(a.Image(ctx, arg(0)))

		case "create":
			report(a.Create(ctx))

		case "update":
			report(a.Update(ctx, arg(0)))

		case "donate":
			report(a.Donate(ctx, arg(0), arg(1)))

		case "withdraw":
			report(a.Withdraw(ctx, arg(0), arg(1)))

		case "pause":
			report(a.Pause(ctx, arg(0)))

		case "resume":
			report(a.Resume(ctx, arg(0)))

		case "end":
			report(a.End(ctx, arg(0)))

		case "admin":
			report(a.AdminList(ctx))

		case "delete":
			report(a.Delete(ctx, arg(0)))

		case "restore":
			report(a.Restore(ctx, arg(0)))

		case "events":
			report(a.Events(ctx, arg(0)))

		case "watch":
			report(a.Watch(ctx, arg(0)))

		case "unwatch":
			report(a.Unwatch(ctx))

		case "about":
			report(a.About(ctx))

		case "howto":
			report(a.HowTo(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
