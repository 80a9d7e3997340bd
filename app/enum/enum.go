// Package enum defines the closed value sets used across the service.
// Exported types are generated by go-pkgz/enum from the unexported declarations below.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeLight theme = iota
	themeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type dbType -lower
type dbType int

const (
	dbTypeSQLite   dbType = iota // enum:alias=sqlite
	dbTypePostgres               // enum:alias=postgres
)

//go:generate go run github.com/go-pkgz/enum@latest -type storeType -lower
type storeType int

const (
	storeTypeCookie storeType = iota
	storeTypeDB
)
