// Package main provides the kernels demo CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/born-ml/kernels/elementwise"
	"github.com/born-ml/kernels/kernels"
	"github.com/born-ml/kernels/tensor"
)

const version = "v0.1.0-dev"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Born kernels %s\n", version)
		return
	}

	elementwise.SetLogger(log.Logger)

	if err := demo(); err != nil {
		log.Fatal().Err(err).Msg("demo failed")
	}
}

// demo runs a mixed-type broadcast fmod and a tensor-scalar remainder,
// logging the resolved types and results.
func demo() error {
	// float32 [2,3] against int32 [3]: broadcasts row-wise, promotes to
	// float32.
	a, err := tensor.FromSlice([]float32{5.5, 7.25, -3.5, 9, 10, 11}, tensor.Shape{2, 3})
	if err != nil {
		return err
	}
	b, err := tensor.FromSlice([]int32{2, 3, 4}, tensor.Shape{3})
	if err != nil {
		return err
	}
	out, err := tensor.NewRaw(tensor.Shape{}, tensor.Float32)
	if err != nil {
		return err
	}

	if err := kernels.FmodTensorOut(a, b, out); err != nil {
		return err
	}
	log.Info().
		Stringer("a", a).
		Stringer("b", b).
		Stringer("common", tensor.PromoteTypes(a.DType(), b.DType())).
		Floats32("out", out.AsFloat32()).
		Msg("fmod tensor/tensor with broadcasting")

	// int64 tensor against an integral scalar: stays integral.
	c, err := tensor.FromSlice([]int64{5, 7, -3}, tensor.Shape{3})
	if err != nil {
		return err
	}
	s := tensor.ScalarInt(2)
	out2, err := tensor.NewRaw(tensor.Shape{}, tensor.Int64)
	if err != nil {
		return err
	}

	if err := kernels.RemainderScalarOut(c, s, out2); err != nil {
		return err
	}
	log.Info().
		Stringer("a", c).
		Stringer("b", s).
		Stringer("common", tensor.PromoteTypeWithScalar(c.DType(), s)).
		Ints64("out", out2.AsInt64()).
		Msg("remainder tensor/scalar")

	return nil
}
