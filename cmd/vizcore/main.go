// Command vizcore drives the red-black tree and shortest-path engines from
// the terminal.
//
//	vizcore                      interactive shell on stdin
//	vizcore -s demo.yaml         run a scenario and exit
//	vizcore -c vizcore.yaml      load settings from a file
//
// Settings resolve as defaults < config file < VIZCORE_* env < flags.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/vizcore/config"
	"github.com/katalvlaran/vizcore/scenario"
	"github.com/katalvlaran/vizcore/shell"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	settings, fs, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "vizcore:", err)
		fs.SetOutput(stderr)
		fs.PrintDefaults()
		return 2
	}

	log, err := config.NewLogger(settings)
	if err != nil {
		fmt.Fprintln(stderr, "vizcore:", err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	opts := []shell.Option{
		shell.WithLogger(log),
		shell.WithVerify(settings.Tree.Verify),
		shell.WithDefaultWeight(settings.Graph.Weight),
		shell.WithIndent(settings.Render.Indent),
	}

	if settings.Scenario != "" {
		sh := shell.New(stdout, opts...)
		if err := runScenario(sh, settings.Scenario); err != nil {
			log.Error("scenario failed", zap.String("path", settings.Scenario), zap.Error(err))
			fmt.Fprintln(stderr, "vizcore:", err)
			return 1
		}
		log.Info("scenario passed", zap.String("path", settings.Scenario))
		return 0
	}

	sh := shell.New(stdout, append(opts, shell.WithPrompt("> "))...)
	log.Info("session started", zap.Bool("verify", settings.Tree.Verify), zap.Int64("weight", settings.Graph.Weight))
	if err := sh.Run(stdin); err != nil {
		fmt.Fprintln(stderr, "vizcore:", err)
		return 1
	}
	log.Info("session ended")

	return 0
}

func runScenario(sh *shell.Shell, path string) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	return sh.RunScenario(sc)
}
