// Package examplepb holds code generated from example.proto and
// scalars.proto. It is checked in so that the runtime behaviour of generated
// messages is tested.
package examplepb

//go:generate go run ../../cmd/pb2gen --proto-path . example.proto scalars.proto
