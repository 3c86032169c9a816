// Package memory implementa los puertos de persistencia sobre mapas en
// memoria protegidos por mutex. Respaldan los tests, el seed de demo y el
// modo de desarrollo sin base de datos (DB_DRIVER=memory).
package memory
