// Package bindings contains all cgo bindings to the hwloc C library.
//
// # Design Principles
//
//  1. Isolation: ALL cgo code lives in this package. No other package may
//     import "C". The internalcheck tests enforce this.
//
//  2. Raw surface: functions here mirror hwloc entry points one to one and
//     keep native integer return codes intact. Interpretation (sentinel
//     errors, virtual depths, flag decomposition) happens in pkg/hwloc.
//
//  3. Opaque handles: topologies, topology objects and bitmaps are native
//     pointers surfaced as unsafe.Pointer. The library owns all of them;
//     this package never allocates or frees native memory except through
//     the hwloc allocation calls themselves.
//
//  4. Stubs: builds without cgo compile against bindings_stub.go and fail
//     at runtime with ErrNotBuilt instead of failing the build.
//
// # Linking
//
// The library name differs per platform: -lhwloc everywhere except
// Windows, where the import library is named libhwloc. Both variants are
// declared via #cgo directives in bindings.go.
package bindings
