// Package lp implements a small LP engine satisfying the contract the
// coloring core needs: addVar, addConstr, setObjective/optimize, and query
// primitives (variable value, constraint slack/sense, coefficient of a
// variable within a constraint, the column of constraints touching a
// variable), plus post-solve bound mutation (setUB/setLB).
//
// Solving is done with a dense Big-M simplex over gonum/mat tableaus,
// re-solved from scratch on every Optimize call; the models this package
// is asked to solve (tens of variables, tens of constraints) are far too
// small for incremental re-optimization to matter.
//
// This is the in-module stand-in for the external LP solver the coloring
// core treats as a collaborator in the wider design: any engine satisfying
// this package's Model interface would do.
package lp
