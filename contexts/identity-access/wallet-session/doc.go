// Package walletsession registers wallet addresses and issues the bearer
// sessions that attribute ledger operations to a caller.
package walletsession
