// Package scenario reads YAML scripts of tree and graph operations.
//
// A scenario is a named list of steps. Each step carries exactly one
// operation, either on the tree or on the graph, and optionally the text the
// rendered output must contain or the error it must fail with:
//
//	name: triangle
//	steps:
//	  - graph: {op: node, id: "1"}
//	  - graph: {op: node, id: "2"}
//	  - graph: {op: edge, source: "1", target: "2", weight: 4}
//	  - graph: {op: path, source: "1", target: "2"}
//	    expect: "1 → 2 (cost 4)"
//	  - tree: {op: insert, values: [3, 1, 2]}
//	  - tree: {op: verify}
//	    expect: valid
//
// Unknown fields are rejected, so a typo in a scenario fails at load time
// rather than silently skipping a step.
package scenario

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyScenario is returned for a scenario without steps.
	ErrEmptyScenario = errors.New("scenario: no steps")

	// ErrInvalidStep is returned for a step that does not describe exactly one
	// well-formed operation.
	ErrInvalidStep = errors.New("scenario: invalid step")
)

// Scenario is a parsed script.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Steps       []Step `yaml:"steps"`
}

// Step is one operation with optional expectations.
type Step struct {
	Tree  *TreeOp  `yaml:"tree,omitempty"`
	Graph *GraphOp `yaml:"graph,omitempty"`

	// Expect must be contained in the rendered output of the step.
	Expect string `yaml:"expect,omitempty"`
	// Error must be contained in the error message the step fails with.
	Error string `yaml:"error,omitempty"`
}

// TreeOp is an operation on the red-black tree.
//
//	insert, delete: values (at least one)
//	find:           values (exactly one)
//	verify, show, reset
type TreeOp struct {
	Op     string `yaml:"op"`
	Values []int  `yaml:"values,omitempty"`
}

// GraphOp is an operation on the graph.
//
//	node:   id, optional x and y
//	edge:   source, target, optional weight
//	unedge: source, target
//	rmnode: id
//	weight: source, target, weight
//	path:   source, target
//	show, reset
type GraphOp struct {
	Op     string   `yaml:"op"`
	ID     string   `yaml:"id,omitempty"`
	X      *float64 `yaml:"x,omitempty"`
	Y      *float64 `yaml:"y,omitempty"`
	Source string   `yaml:"source,omitempty"`
	Target string   `yaml:"target,omitempty"`
	Weight *int64   `yaml:"weight,omitempty"`
}

// Load reads and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scenario")
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %q", path)
	}

	return s, nil
}

// Parse decodes a scenario from r and validates every step.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScenario
		}
		return nil, errors.Wrap(err, "decode scenario")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks that the scenario has steps and that each converts into a
// command.
func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScenario
	}
	for i := range s.Steps {
		if _, err := s.Steps[i].Command(); err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}

	return nil
}

// Commands returns the shell command line of every step.
func (s *Scenario) Commands() ([]string, error) {
	out := make([]string, 0, len(s.Steps))
	for i := range s.Steps {
		cmd, err := s.Steps[i].Command()
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", i+1)
		}
		out = append(out, cmd)
	}

	return out, nil
}

// Command converts the step into a shell command line.
func (st *Step) Command() (string, error) {
	switch {
	case st.Tree != nil && st.Graph != nil:
		return "", errors.Wrap(ErrInvalidStep, "both tree and graph set")
	case st.Tree != nil:
		return st.Tree.command()
	case st.Graph != nil:
		return st.Graph.command()
	default:
		return "", errors.Wrap(ErrInvalidStep, "neither tree nor graph set")
	}
}

func (op *TreeOp) command() (string, error) {
	switch op.Op {
	case "insert", "delete":
		if len(op.Values) == 0 {
			return "", errors.Wrapf(ErrInvalidStep, "tree %s needs values", op.Op)
		}
	case "find":
		if len(op.Values) != 1 {
			return "", errors.Wrap(ErrInvalidStep, "tree find needs exactly one value")
		}
	case "verify", "show", "reset":
		if len(op.Values) != 0 {
			return "", errors.Wrapf(ErrInvalidStep, "tree %s takes no values", op.Op)
		}
	default:
		return "", errors.Wrapf(ErrInvalidStep, "unknown tree op %q", op.Op)
	}

	parts := []string{"tree", op.Op}
	for _, v := range op.Values {
		parts = append(parts, strconv.Itoa(v))
	}

	return strings.Join(parts, " "), nil
}

func (op *GraphOp) command() (string, error) {
	need := func(fields ...string) error {
		for _, f := range fields {
			var v string
			switch f {
			case "id":
				v = op.ID
			case "source":
				v = op.Source
			case "target":
				v = op.Target
			}
			if v == "" {
				return errors.Wrapf(ErrInvalidStep, "graph %s needs %s", op.Op, f)
			}
			if strings.ContainsAny(v, " \t") {
				return errors.Wrapf(ErrInvalidStep, "graph %s: %s %q contains whitespace", op.Op, f, v)
			}
		}

		return nil
	}

	switch op.Op {
	case "node":
		if err := need("id"); err != nil {
			return "", err
		}
		if (op.X == nil) != (op.Y == nil) {
			return "", errors.Wrap(ErrInvalidStep, "graph node needs both x and y or neither")
		}
		if op.X == nil {
			return "graph node " + op.ID, nil
		}
		return fmt.Sprintf("graph node %s %s %s", op.ID, formatFloat(*op.X), formatFloat(*op.Y)), nil

	case "move":
		if err := need("id"); err != nil {
			return "", err
		}
		if op.X == nil || op.Y == nil {
			return "", errors.Wrap(ErrInvalidStep, "graph move needs x and y")
		}
		return fmt.Sprintf("graph move %s %s %s", op.ID, formatFloat(*op.X), formatFloat(*op.Y)), nil

	case "edge":
		if err := need("source", "target"); err != nil {
			return "", err
		}
		if op.Weight == nil {
			return fmt.Sprintf("graph edge %s %s", op.Source, op.Target), nil
		}
		return fmt.Sprintf("graph edge %s %s %d", op.Source, op.Target, *op.Weight), nil

	case "unedge", "path":
		if err := need("source", "target"); err != nil {
			return "", err
		}
		return fmt.Sprintf("graph %s %s %s", op.Op, op.Source, op.Target), nil

	case "rmnode":
		if err := need("id"); err != nil {
			return "", err
		}
		return "graph rmnode " + op.ID, nil

	case "weight":
		if err := need("source", "target"); err != nil {
			return "", err
		}
		if op.Weight == nil {
			return "", errors.Wrap(ErrInvalidStep, "graph weight needs weight")
		}
		return fmt.Sprintf("graph weight %s %s %d", op.Source, op.Target, *op.Weight), nil

	case "show", "reset":
		return "graph " + op.Op, nil

	default:
		return "", errors.Wrapf(ErrInvalidStep, "unknown graph op %q", op.Op)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
