// Package model defines the data shapes walked through by the typetour CLI.
//
// This package contains pure data structures with no external dependencies:
// plain records (Person, Pair, Point, Rectangle), closed variant sets
// (WebEvent, Operation, Status, Work) and enumerations whose values carry a
// numeric discriminant (Number, Color).
//
// None of these values are shared or mutated after construction; every one
// is built, described once, and discarded when the process exits.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
