package shell

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/vizcore/core"
	"github.com/katalvlaran/vizcore/rbtree"
	"github.com/katalvlaran/vizcore/render"
	"github.com/katalvlaran/vizcore/scenario"
)

var (
	// ErrQuit is returned by Exec for the quit command.
	ErrQuit = errors.New("shell: quit")

	// ErrUnknownCommand is returned for an unrecognized command word.
	ErrUnknownCommand = errors.New("shell: unknown command")

	// ErrUsage is returned for a known command with malformed arguments.
	ErrUsage = errors.New("shell: usage")

	// ErrExpectation is returned when a scenario step's output or error does
	// not match what the step expects.
	ErrExpectation = errors.New("shell: expectation failed")
)

// Options configures a Shell.
type Options struct {
	// Logger receives one debug record per command and is handed to both
	// engines.
	Logger *zap.Logger
	// Verify runs a red-black verification after every tree mutation.
	Verify bool
	// Weight is used for "graph edge" without an explicit weight.
	Weight int64
	// Indent is the number of spaces per nesting level in rendered output.
	Indent int
	// Prompt is written before reading each interactive line; empty for none.
	Prompt string
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns a silent shell with default edge weight and indent.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Weight: core.DefaultWeight,
		Indent: render.DefaultIndent,
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithVerify enables verification after every tree mutation.
func WithVerify(v bool) Option {
	return func(o *Options) { o.Verify = v }
}

// WithDefaultWeight sets the weight of edges created without one.
func WithDefaultWeight(w int64) Option {
	return func(o *Options) { o.Weight = w }
}

// WithIndent sets the rendering indent.
func WithIndent(n int) Option {
	return func(o *Options) { o.Indent = n }
}

// WithPrompt sets the interactive prompt.
func WithPrompt(p string) Option {
	return func(o *Options) { o.Prompt = p }
}

// Shell interprets text commands against one tree and one graph and writes
// rendered results to its output.
type Shell struct {
	tree  *rbtree.Tree[int]
	graph *core.Graph
	out   io.Writer
	opts  Options

	// nextID is the candidate for the next generated node ID.
	nextID int
}

// New returns a Shell writing to out. Every engine change is rendered to out
// as it happens.
func New(out io.Writer, opts ...Option) *Shell {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Shell{
		tree:   rbtree.New[int](rbtree.WithLogger(cfg.Logger.Named("rbtree"))),
		graph:  core.NewGraph(core.WithLogger(cfg.Logger.Named("core"))),
		out:    out,
		opts:   cfg,
		nextID: 1,
	}

	s.tree.Changed().Hook(func(c rbtree.Change[int]) {
		s.println(render.Change(c))
	})
	s.graph.Changed().Hook(func(c core.Change) {
		s.println(render.GraphChange(c))
	})

	return s
}

// Tree exposes the tree the shell operates on.
func (s *Shell) Tree() *rbtree.Tree[int] { return s.tree }

// Graph exposes the graph the shell operates on.
func (s *Shell) Graph() *core.Graph { return s.graph }

func (s *Shell) println(a ...interface{}) {
	fmt.Fprintln(s.out, a...)
}

// Exec runs a single command line. Blank lines and lines starting with '#'
// are ignored.
func (s *Shell) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	s.opts.Logger.Debug("exec", zap.Strings("args", fields))

	switch fields[0] {
	case "tree":
		return s.execTree(fields[1:])
	case "graph":
		return s.execGraph(fields[1:])
	case "help":
		s.println(strings.TrimRight(helpText, "\n"))
		return nil
	case "quit", "exit":
		return ErrQuit
	default:
		return errors.Wrapf(ErrUnknownCommand, "%q", fields[0])
	}
}

// Run executes r line by line until EOF or quit. Failing commands are
// reported with their line number and do not stop the session. Only read
// errors are returned.
func (s *Shell) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for lineNo := 1; ; lineNo++ {
		if s.opts.Prompt != "" {
			fmt.Fprint(s.out, s.opts.Prompt)
		}
		if !sc.Scan() {
			break
		}

		err := s.Exec(sc.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			s.opts.Logger.Debug("command failed", zap.Int("line", lineNo), zap.Error(err))
			s.println(fmt.Sprintf("error: line %d: %v", lineNo, err))
		}
	}

	return errors.Wrap(sc.Err(), "read commands")
}

// RunScenario executes every step of sc and stops at the first failing step.
// A step fails when its command fails unexpectedly, when it does not fail
// with the expected error, or when its output lacks the expected text.
func (s *Shell) RunScenario(sc *scenario.Scenario) error {
	s.opts.Logger.Info("running scenario", zap.String("name", sc.Name), zap.Int("steps", len(sc.Steps)))

	for i := range sc.Steps {
		if err := s.runStep(&sc.Steps[i]); err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}

	return nil
}

func (s *Shell) runStep(st *scenario.Step) error {
	cmd, err := st.Command()
	if err != nil {
		return err
	}

	var captured bytes.Buffer
	out := s.out
	s.out = io.MultiWriter(out, &captured)
	err = s.Exec(cmd)
	s.out = out

	switch {
	case st.Error != "":
		if err == nil {
			return errors.Wrapf(ErrExpectation, "%q succeeded, want error containing %q", cmd, st.Error)
		}
		if !strings.Contains(err.Error(), st.Error) {
			return errors.Wrapf(ErrExpectation, "%q failed with %q, want error containing %q", cmd, err, st.Error)
		}
	case err != nil:
		return errors.Wrapf(err, "%q", cmd)
	}

	if st.Expect != "" && !strings.Contains(captured.String(), st.Expect) {
		return errors.Wrapf(ErrExpectation, "%q output %q does not contain %q", cmd, captured.String(), st.Expect)
	}

	return nil
}

const helpText = `tree insert <v...>          insert integers
tree delete <v...>          delete integers
tree find <v>               look up an integer
tree verify                 check the red-black properties
tree show                   print the tree
tree reset                  remove every value
graph node [id] [x y]       add a node (generated id when omitted)
graph move <id> <x> <y>     reposition a node
graph edge <a> <b> [w]      connect two nodes
graph unedge <a> <b>        remove the edge between two nodes
graph rmnode <id>           remove a node and its edges
graph weight <a> <b> <w>    change an edge weight
graph path <src> <dst>      shortest path from src to dst
graph show                  print nodes and edges
graph reset                 remove every node and edge
help                        this text
quit                        leave the shell
`
