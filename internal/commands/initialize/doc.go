// Package initialize implements the init command, which writes a starter
// .depdrift.yaml into the current directory.
package initialize
