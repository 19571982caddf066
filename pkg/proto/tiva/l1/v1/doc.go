// Package pb holds the L1 wire messages generated from l1.proto.
package pb

//go:generate protoc --go_out=paths=source_relative:. l1.proto
