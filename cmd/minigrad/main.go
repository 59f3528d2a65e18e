// Package main provides the minigrad CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/gradcheck"
	"github.com/born-ml/minigrad/internal/nn"
)

const version = "v0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("minigrad: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "minigrad %s\n", version)
		return nil
	case "demo":
		return demo(out)
	case "gradcheck":
		return gradCheck(args[1:], out)
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "minigrad - scalar reverse-mode autodiff")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version              Show version")
	fmt.Fprintln(out, "  demo                 Backpropagate through a small expression and build an MLP")
	fmt.Fprintln(out, "  gradcheck [-n N]     Compare gradients with finite differences at N random points")
}

// demo prints the gradients of g = (a*b + c) * f and summarizes an MLP.
func demo(out io.Writer) error {
	a := autodiff.New(2.0)
	b := autodiff.New(-3.0)
	c := autodiff.New(10.0)
	e := a.Mul(b)
	d := e.Add(c)
	f := autodiff.New(-2.0)
	g := d.Mul(f)

	g.Backward()

	fmt.Fprintln(out, "g = (a*b + c) * f")
	for _, n := range []struct {
		name string
		node *autodiff.Node[float64]
	}{
		{"a", a}, {"b", b}, {"c", c}, {"e", e}, {"d", d}, {"f", f}, {"g", g},
	} {
		fmt.Fprintf(out, "  %s: %v\n", n.name, n.node)
	}

	model, err := nn.NewMLP[float64]([]int{3, 4, 4, 1}, rand.New(rand.NewSource(1)))
	if err != nil {
		return err
	}
	model.ZeroGrad()
	fmt.Fprintf(out, "\n%s: %d parameters\n", model, model.NumParameters())
	return nil
}

// expression is relu(x0*x1 + x2) / x3² - x4, each input used once.
func expression(in []*autodiff.Node[float64]) *autodiff.Node[float64] {
	hidden := in[0].Mul(in[1]).Add(in[2]).ReLU()
	return hidden.Div(in[3].Pow(2)).Sub(in[4])
}

func gradCheck(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("gradcheck", flag.ContinueOnError)
	fs.SetOutput(out)
	n := fs.Int("n", 100, "number of random points")
	seed := fs.Int64("seed", 1, "random seed")
	tol := fs.Float64("tol", 1e-4, "relative tolerance")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 1 {
		return fmt.Errorf("gradcheck: -n must be positive, got %d", *n)
	}

	// Inputs in [0.5, 2) keep relu active and the divisor away from zero.
	rng := rand.New(rand.NewSource(*seed))
	points := make([][]float64, *n)
	for i := range points {
		p := make([]float64, 5)
		for j := range p {
			p[j] = 0.5 + 1.5*rng.Float64()
		}
		points[i] = p
	}

	cfg := gradcheck.DefaultConfig()
	cfg.Tolerance = *tol
	reports, err := gradcheck.CheckBatch(expression, points, cfg)
	if err != nil {
		return err
	}

	worst := 0.0
	for _, r := range reports {
		worst = max(worst, r.MaxError)
	}
	fmt.Fprintf(out, "gradcheck: %d points ok, max relative error %.3g\n", len(reports), worst)
	return nil
}
