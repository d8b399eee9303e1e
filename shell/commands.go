package shell

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/vizcore/core"
	"github.com/katalvlaran/vizcore/dijkstra"
	"github.com/katalvlaran/vizcore/render"
)

func usage(format string) error {
	return errors.Wrap(ErrUsage, format)
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(ErrUsage, "%q is not an integer", a)
		}
		out = append(out, v)
	}

	return out, nil
}

func (s *Shell) execTree(args []string) error {
	if len(args) == 0 {
		return usage("tree <insert|delete|find|verify|show|reset> ...")
	}

	switch args[0] {
	case "insert", "delete":
		if len(args) < 2 {
			return usage("tree " + args[0] + " <v...>")
		}
		values, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		for _, v := range values {
			if args[0] == "insert" {
				s.tree.Insert(v)
			} else {
				s.tree.Delete(v)
			}
			if err := s.verifyAfterMutation(); err != nil {
				return err
			}
		}

	case "find":
		if len(args) != 2 {
			return usage("tree find <v>")
		}
		values, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		if n := s.tree.Find(values[0]); n != nil {
			s.println(fmt.Sprintf("found %d (%s)", n.Value(), n.Color()))
		} else {
			s.println(fmt.Sprintf("%d not found", values[0]))
		}

	case "verify":
		s.println(render.Report(s.tree.Verify()))

	case "show":
		fmt.Fprint(s.out, render.Tree(s.tree.Root(), s.opts.Indent))

	case "reset":
		s.tree.Reset()

	default:
		return errors.Wrapf(ErrUnknownCommand, "tree %q", args[0])
	}

	return nil
}

// verifyAfterMutation reports the tree state when verification is enabled.
// An invalid tree is an error.
func (s *Shell) verifyAfterMutation() error {
	if !s.opts.Verify {
		return nil
	}

	r := s.tree.Verify()
	s.println(render.Report(r))

	return r.Err()
}

func (s *Shell) execGraph(args []string) error {
	if len(args) == 0 {
		return usage("graph <node|move|edge|unedge|rmnode|weight|path|show|reset> ...")
	}

	switch args[0] {
	case "node":
		return s.addNode(args[1:])

	case "move":
		if len(args) != 4 {
			return usage("graph move <id> <x> <y>")
		}
		x, y, err := parsePosition(args[2], args[3])
		if err != nil {
			return err
		}
		return s.graph.MoveNode(args[1], x, y)

	case "edge":
		if len(args) != 3 && len(args) != 4 {
			return usage("graph edge <a> <b> [w]")
		}
		w := s.opts.Weight
		if len(args) == 4 {
			var err error
			if w, err = strconv.ParseInt(args[3], 10, 64); err != nil {
				return errors.Wrapf(ErrUsage, "weight %q is not an integer", args[3])
			}
		}
		e, err := s.graph.Connect(args[1], args[2], w)
		if err != nil {
			return err
		}
		if e == nil {
			s.println(fmt.Sprintf("edge between %s and %s already exists", args[1], args[2]))
		}

	case "unedge":
		if len(args) != 3 {
			return usage("graph unedge <a> <b>")
		}
		return s.graph.DeleteEdgeBetween(args[1], args[2])

	case "rmnode":
		if len(args) != 2 {
			return usage("graph rmnode <id>")
		}
		return s.graph.DeleteNode(args[1])

	case "weight":
		if len(args) != 4 {
			return usage("graph weight <a> <b> <w>")
		}
		w, err := strconv.ParseInt(args[3], 10, 64)
		if err != nil {
			return errors.Wrapf(ErrUsage, "weight %q is not an integer", args[3])
		}
		return s.graph.SetEdgeWeight(args[1], args[2], w)

	case "path":
		if len(args) != 3 {
			return usage("graph path <src> <dst>")
		}
		return s.shortestPath(args[1], args[2])

	case "show":
		fmt.Fprint(s.out, render.Graph(s.graph, s.opts.Indent))

	case "reset":
		s.graph.Reset()
		s.nextID = 1

	default:
		return errors.Wrapf(ErrUnknownCommand, "graph %q", args[0])
	}

	return nil
}

// addNode handles "graph node [id] [x y]". Without an id the smallest unused
// integer id counting from the last generated one is assigned.
func (s *Shell) addNode(args []string) error {
	var (
		id   string
		x, y float64
	)

	switch len(args) {
	case 0, 2:
		id = s.generateID()
	case 1, 3:
		id, args = args[0], args[1:]
	default:
		return usage("graph node [id] [x y]")
	}
	if len(args) == 2 {
		var err error
		if x, y, err = parsePosition(args[0], args[1]); err != nil {
			return err
		}
	}

	return s.graph.AddNode(core.NewNode(id, x, y))
}

func parsePosition(xs, ys string) (x, y float64, err error) {
	var errX, errY error
	x, errX = strconv.ParseFloat(xs, 64)
	y, errY = strconv.ParseFloat(ys, 64)
	if errX != nil || errY != nil {
		return 0, 0, errors.Wrapf(ErrUsage, "position (%s, %s) is not numeric", xs, ys)
	}

	return x, y, nil
}

func (s *Shell) generateID() string {
	for s.graph.HasNode(strconv.Itoa(s.nextID)) {
		s.nextID++
	}
	id := strconv.Itoa(s.nextID)
	s.nextID++

	return id
}

func (s *Shell) shortestPath(src, dst string) error {
	target, err := dijkstra.ShortestPath(s.graph, src, dst,
		dijkstra.WithLogger(s.opts.Logger.Named("dijkstra")))
	if errors.Is(err, dijkstra.ErrNoPath) {
		s.println(fmt.Sprintf("no path from %s to %s (cost %d)", src, dst, dijkstra.NoPath))
		return nil
	}
	if err != nil {
		return err
	}

	path, err := dijkstra.Path(s.graph, target)
	if err != nil {
		return err
	}
	s.println(render.Path(path))

	return nil
}
