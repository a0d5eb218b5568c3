// Package nftledger implements the marketplace token ledger: minting,
// listings, purchases with royalty and platform fee settlement, transfers,
// and the admin surface (fee withdrawal, pause, mint price, role handover).
//
// Every operation runs inside a single store transaction so state changes
// are all-or-nothing. Domain/application logic stays decoupled from
// runtime/platform concerns through ports and adapter composition.
package nftledger
