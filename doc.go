// Package fhirconverter converts FHIR resources between releases.
//
// A conversion reads a parsed source resource (see package node), walks it
// with per-type processors generated from declarative mapping tables (see
// package mapping) and produces the strongly typed model of the next release
// (see package model/r5). Single release steps, such as R4 to R5, live under
// transition/ and can be chained.
//
// # Quick Start
//
//	import (
//	    fc "github.com/gofhir/converter"
//	    "github.com/gofhir/converter/engine"
//	)
//
//	conv, err := engine.New(ctx, fc.R4, fc.R5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, resourceJSON)
//	if result.HasErrors() {
//	    for _, issue := range result.Errors() {
//	        fmt.Println(issue)
//	    }
//	}
//	patient := result.Resource.(*r5.Patient)
//	result.Release() // Return to pool when done
//
// # Functional Options
//
//	conv, err := engine.New(ctx, fc.R4, fc.R5,
//	    fc.WithStrictParse(true),
//	    fc.WithFilter("Patient.active = true"),
//	    fc.WithWorkerCount(runtime.NumCPU()),
//	)
//
// # Errors
//
// A resource whose type has no conversion fails with
// *mapping.UnknownResourceTypeError. A malformed primitive fails with a
// *mapping.FieldError naming the node path, wrapping a *scalar.SyntaxError.
// Unknown element names are ignored. Result turns these into
// OperationOutcome style issues.
//
// # Batches
//
// Converters hold no per call state, so one converter serves any number of
// goroutines. Package worker converts batches on a pool and package stream
// converts the entries of a Bundle one by one.
package fhirconverter
