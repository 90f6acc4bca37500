// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command algebradump reads a small textual s-expression encoding of host
// stack IR and runs the algebra analyzer against it: printing the
// reconstructed closed-form expression, its algebraic inverse, derivative or
// integral.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arrlang/algebra/pkg/algebra"
	"github.com/arrlang/algebra/pkg/ir"
)

var rootCmd = &cobra.Command{
	Use:   "algebradump [flags] file",
	Short: "analyze, invert, differentiate or integrate a fragment of host stack IR.",
	Long: `algebradump reconstructs the closed-form symbolic expression denoted
by a small fragment of host stack IR, and can analyze, invert, differentiate
or integrate it with respect to the single free variable X.`,
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug tracing")
	rootCmd.AddCommand(analyzeCmd, invertCmd, derivativeCmd, integralCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func tracerFor(cmd *cobra.Command) algebra.Tracer {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return algebra.NopTracer{}
	}

	logger := log.New()
	logger.SetLevel(log.DebugLevel)

	return algebra.NewLogrusTracer(logger)
}

func readProgram(path string) ([]ir.Node, *ir.Assembly, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	asm := ir.NewAssembly()

	nodes, err := parseProgram(string(bytes), asm)
	if err != nil {
		return nil, nil, err
	}

	return nodes, asm, nil
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze file",
	Short: "print the closed-form expression a fragment of IR denotes.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nodes, asm, err := readProgram(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		result, aerr := algebra.Analyze(nodes, asm, tracerFor(cmd))
		if aerr != nil {
			fmt.Fprintln(os.Stderr, aerr)
			os.Exit(1)
		}

		fmt.Println(result)
	},
}

var invertCmd = &cobra.Command{
	Use:   "invert file",
	Short: "print the algebraic inverse of a fragment of IR, if one exists.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nodes, asm, err := readProgram(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		node, ok, aerr := algebra.AlgebraicInverse(nodes, asm, tracerFor(cmd))
		if !ok {
			fmt.Fprintln(os.Stderr, "not handled by the algebra system")
			os.Exit(2)
		}

		if aerr != nil {
			fmt.Fprintln(os.Stderr, aerr)
			os.Exit(1)
		}

		fmt.Println(node.String())
	},
}

var derivativeCmd = &cobra.Command{
	Use:   "derivative file",
	Short: "print the derivative of a fragment of IR with respect to X.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCalculus(cmd, args[0], algebra.Derivative)
	},
}

var integralCmd = &cobra.Command{
	Use:   "integral file",
	Short: "print the integral of a fragment of IR with respect to X.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCalculus(cmd, args[0], algebra.Integral)
	},
}

func runCalculus(cmd *cobra.Command, path string, f func(ir.Node, *ir.Assembly, algebra.Tracer) (ir.Node, *algebra.Error)) {
	nodes, asm, err := readProgram(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	node, aerr := f(&ir.Run{Children: nodes}, asm, tracerFor(cmd))
	if aerr != nil {
		fmt.Fprintln(os.Stderr, aerr)
		os.Exit(1)
	}

	fmt.Println(node.String())
}
