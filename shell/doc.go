// Package shell is a line-oriented command interpreter over one red-black
// tree of integers and one weighted graph.
//
// Each command mutates or queries an engine and writes the result as text;
// every engine change is rendered as it is published on the engine's
// Changed event, so a single "tree insert 3" prints the attach, recolor and
// rotation steps it caused. "help" lists the commands.
//
// Run drives an interactive session: errors are printed with their line
// number and the session continues. RunScenario drives a scripted session
// from the scenario package and stops at the first failing step.
package shell
