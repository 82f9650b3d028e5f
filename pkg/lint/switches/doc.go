// Package switches decides whether a switch statement covers every value of
// its governing type.
//
// Only closed domains are checked: bool, nullable bool, enums and nullable
// enums. Flags enums and every other type are open and always treated as
// complete, as is a switch with a default clause. A switch whose labels are
// not all constants falls back to the open domain, and a switch the host
// reported errors for is not judged at all.
package switches
