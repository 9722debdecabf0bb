// Package binding connects mapper interfaces to the session that serves them.
//
// Go cannot implement an interface at runtime, so every mapper interface is
// paired with a small adapter struct that forwards each method to a
// MapperProxy. Adapters are produced by mapper-gen (or written by hand) and
// announce themselves to the package catalog from init():
//
//	func init() {
//		binding.Register(func(p *binding.MapperProxy) IUserDao {
//			return &iUserDaoMapper{proxy: p}
//		})
//	}
//
// Key types:
//   - MapperRegistry: interface type -> MapperProxyFactory lookup table
//   - MapperProxyFactory: builds adapters bound to a session
//   - MapperProxy: turns a method call into a statement id and dispatches it
package binding
