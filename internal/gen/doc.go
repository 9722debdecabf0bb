// Package gen renders mapper adapters: one file per package holding an
// unexported struct per interface and an init() that registers them with the
// binding catalog.
//
// Generation approach uses text/template + go/format, so output is
// deterministic and gofmt-clean.
//
// Adapter patterns, by result shape:
//   - (T, error): return binding.Result[T](proxy.Invoke(...))
//   - (error): discard the value, return the dispatch error
//   - (T): convert, panic on failure
//   - (): dispatch, panic on failure
//
// Files written outside the mapper's package import it and qualify its
// names. Parameters that would shadow a name the adapter body uses are
// renamed to p<N>.
package gen
