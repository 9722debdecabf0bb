// Package analyze loads Go packages and extracts mapper interfaces.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of every exported interface and its method set.
//
// Key types:
//   - TypeID: package import path + interface name
//   - InterfaceInfo: the interface, its methods and the imports its
//     signatures need
//   - MethodInfo: parameters, results and the ResultShape that decides how
//     an adapter returns the dispatched value
package analyze
