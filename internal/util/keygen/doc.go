// Package keygen generates RSA key pairs for node login credentials.
//
// Keys are produced in PEM format (private) and OpenSSH authorized_keys
// format (public). Provisioning uses them when a node template carries no
// login key of its own, so every created node is reachable over SSH.
package keygen
