// Package main provides the Volgyerdo neural toolkit CLI.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/volgyerdo/neural/nn"
	"github.com/volgyerdo/neural/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Volgyerdo neural %s\n", version)
	case "demo":
		cfg := tensor.DefaultRandomConfig()
		if len(os.Args) > 2 {
			seed, err := strconv.ParseUint(os.Args[2], 10, 64)
			if err != nil {
				log.Fatalf("invalid seed %q: %v", os.Args[2], err)
			}
			cfg.Seed = seed
		}
		if err := demo(cfg); err != nil {
			log.Fatalf("demo: %v", err)
		}
	case "activation":
		if len(os.Args) < 3 {
			log.Fatalf("activation: preset name required (one of %v)", nn.PresetNames())
		}
		act, err := nn.Preset(os.Args[2])
		if err != nil {
			log.Fatalf("activation: %v", err)
		}
		fmt.Printf("%+v\n", act)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Volgyerdo neural - tensor storage for neural networks")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version            Show version")
	fmt.Println("  demo [seed]        Run tensor arithmetic on sample data")
	fmt.Println("  activation <name>  Print an activation preset")
}

func demo(cfg tensor.RandomConfig) error {
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	if err != nil {
		return err
	}
	fmt.Println("x       =", x)
	fmt.Println("x^T     =", x.Transpose())

	w, err := tensor.Create(tensor.Shape{2, 3}, tensor.Float32)
	if err != nil {
		return err
	}
	if err := w.RandomizeValue(cfg.Source(), cfg.Min, cfg.Max); err != nil {
		return err
	}
	fmt.Println("w       =", w)

	sum, err := tensor.AddAny(x, w)
	if err != nil {
		return err
	}
	fmt.Println("x + w   =", sum)

	counts := tensor.Zeros[int16](tensor.Shape{4})
	counts.AddScalar(5)
	fmt.Println("counts  =", counts)
	fmt.Printf("hash(x) = %#016x\n", x.Hash())
	return nil
}
