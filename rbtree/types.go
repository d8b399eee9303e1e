// Package rbtree defines the colors, options, change records and validation
// report used by the red-black tree engine.
//
// Errors:
//
//	ErrRootHasNoSibling - Sibling was asked for the root node.
//	ErrNilNode          - a nil node was passed where a tree node is required.
//	ErrInvalidTree      - wrapped by Report.Err when validation failed.
package rbtree

import (
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Sentinel errors for tree operations.
var (
	// ErrRootHasNoSibling is returned by Sibling when called on the root.
	ErrRootHasNoSibling = errors.New("rbtree: root has no siblings")

	// ErrNilNode indicates a nil *Node was supplied.
	ErrNilNode = errors.New("rbtree: node is nil")

	// ErrInvalidTree is the base error of a failed validation Report.
	ErrInvalidTree = errors.New("rbtree: red-black properties violated")
)

// Color is the balance tag of a node.
type Color uint8

const (
	// Red is the color of every freshly attached node.
	Red Color = iota + 1
	// Black nodes count towards the black-height. Nil children are black.
	Black
)

// String returns "red", "black" or "invalid(n)".
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "invalid(" + strconv.Itoa(int(c)) + ")"
	}
}

// Op identifies the public operation that produced a Change.
type Op uint8

const (
	OpInsert Op = iota + 1
	OpDelete
	OpReset
)

// String returns the lower-case operation name.
func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReset:
		return "reset"
	default:
		return "unknown"
	}
}

// StepKind classifies a single structural mutation performed inside an operation.
type StepKind uint8

const (
	// StepAttach: a new node was linked under its parent (or became root).
	StepAttach StepKind = iota + 1
	// StepRecolor: a node changed color; Step.Color holds the new color.
	StepRecolor
	// StepRotateLeft: left rotation around Step.Value.
	StepRotateLeft
	// StepRotateRight: right rotation around Step.Value.
	StepRotateRight
	// StepTransplant: the subtree rooted at Step.Value replaced another subtree.
	StepTransplant
	// StepDetach: the node holding Step.Value left the tree.
	StepDetach
)

// String returns a short name of the step kind.
func (k StepKind) String() string {
	switch k {
	case StepAttach:
		return "attach"
	case StepRecolor:
		return "recolor"
	case StepRotateLeft:
		return "rotate-left"
	case StepRotateRight:
		return "rotate-right"
	case StepTransplant:
		return "transplant"
	case StepDetach:
		return "detach"
	default:
		return "unknown"
	}
}

// Step is one recorded mutation. Value identifies the node the step applies
// to; for StepTransplant with a nil replacement, Empty is true and Value is
// the zero value.
type Step[T any] struct {
	Kind  StepKind
	Value T
	Color Color
	Empty bool
}

// Change summarizes one public operation. Applied is false when the
// operation was a no-op (duplicate insert, missing delete).
type Change[T any] struct {
	Op      Op
	Value   T
	Applied bool
	Steps   []Step[T]
}

// Rotations counts rotation steps in the change.
func (c Change[T]) Rotations() int {
	n := 0
	for _, s := range c.Steps {
		if s.Kind == StepRotateLeft || s.Kind == StepRotateRight {
			n++
		}
	}

	return n
}

// Report is the result of Verify. It is a value, never an error: callers
// display Message as-is and inspect Valid.
type Report struct {
	Valid       bool
	Message     string
	BlackHeight int // black nodes on any root-to-nil path, root included
}

// Err returns nil for a valid report and ErrInvalidTree wrapped with the
// report message otherwise.
func (r Report) Err() error {
	if r.Valid {
		return nil
	}

	return errors.Wrap(ErrInvalidTree, r.Message)
}

// Option configures a Tree.
type Option func(*Options)

// Options holds Tree configuration.
type Options struct {
	// Logger receives debug records for rotations and fixup cases.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
