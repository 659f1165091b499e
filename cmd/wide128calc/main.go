package main

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bantling/wide128"
	"github.com/bantling/wide128/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "wide128calc",
		Short:        "128-bit integer calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var signed bool
	rootCmd.PersistentFlags().BoolVarP(&signed, "signed", "s", false, "Treat operands and results as signed (I128)")

	parseOperand := func(s string) (wide128.U128, error) {
		if signed {
			i, err := wide128.ParseI128(s)
			return i.AsU128(), err
		}

		return wide128.ParseU128(s)
	}

	printValue := func(u wide128.U128) {
		if signed {
			fmt.Println(u.AsI128())
		} else {
			fmt.Println(u)
		}
	}

	binaryCmd := func(use, short string, op func(a, b wide128.U128) wide128.U128) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <a> <b>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := parseOperand(args[0])
				if err != nil {
					return err
				}

				b, err := parseOperand(args[1])
				if err != nil {
					return err
				}

				printValue(op(a, b))
				return nil
			},
		}
	}

	// add, sub, mul wrap mod 2^128, so the signed and unsigned bit patterns
	// coincide and the unsigned kernel serves both
	addCmd := binaryCmd("add", "Add two 128-bit values", wide128.U128.Add)
	subCmd := binaryCmd("sub", "Subtract the second 128-bit value from the first", wide128.U128.Sub)
	mulCmd := binaryCmd("mul", "Multiply two 128-bit values", wide128.U128.Mul)

	// div truncates toward zero for signed operands, so it dispatches on the
	// signed flag rather than reusing the unsigned bit-pattern path
	divCmd := &cobra.Command{
		Use:   "div <dividend> <divisor>",
		Short: "Divide two 128-bit values, printing quotient and remainder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if signed {
				n, err := wide128.ParseI128(args[0])
				if err != nil {
					return err
				}

				d, err := wide128.ParseI128(args[1])
				if err != nil {
					return err
				}

				if d.IsZero() {
					return fmt.Errorf("division by zero")
				}

				q, r := n.QuoRem(d)
				fmt.Printf("%s r %s\n", q, r)
				return nil
			}

			n, err := wide128.ParseU128(args[0])
			if err != nil {
				return err
			}

			d, err := wide128.ParseU128(args[1])
			if err != nil {
				return err
			}

			if d.IsZero() {
				return fmt.Errorf("division by zero")
			}

			q, r := n.QuoRem(d)
			fmt.Printf("%s r %s\n", q, r)
			return nil
		},
	}

	// convert command
	var (
		base     int
		showBase bool
		upper    bool
		width    int
		fill     string
		adjust   string
		group    int
		sep      string
	)

	convertCmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Render a 128-bit value in another base with stream-style flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseOperand(args[0])
			if err != nil {
				return err
			}

			opts := wide128.FormatOptions{
				ShowBase:  showBase,
				UpperCase: upper,
				Width:     width,
				Fill:      ' ',
			}

			switch base {
			case 2:
				opts.Base = wide128.BaseBin
			case 8:
				opts.Base = wide128.BaseOct
			case 10:
				opts.Base = wide128.BaseDec
			case 16:
				opts.Base = wide128.BaseHex
			default:
				return fmt.Errorf("unsupported base %d: want 2, 8, 10, or 16", base)
			}

			if fill != "" {
				opts.Fill = fill[0]
			}

			switch adjust {
			case "left":
				opts.Adjust = wide128.AdjustLeft
			case "internal":
				opts.Adjust = wide128.AdjustInternal
			case "", "right":
				opts.Adjust = wide128.AdjustRight
			default:
				return fmt.Errorf("unsupported adjust %q: want left, right, or internal", adjust)
			}

			if group > 0 {
				opts.Grouping = string(byte(group))
				opts.ThousandsSep = ','
				if sep != "" {
					opts.ThousandsSep = sep[0]
				}
			}

			if signed {
				fmt.Println(v.AsI128().Format(opts))
			} else {
				fmt.Println(v.Format(opts))
			}

			return nil
		},
	}
	convertCmd.Flags().IntVarP(&base, "base", "b", 10, "Output base: 2, 8, 10, or 16")
	convertCmd.Flags().BoolVar(&showBase, "show-base", false, "Emit the 0x/0X/0/0b base prefix")
	convertCmd.Flags().BoolVar(&upper, "upper", false, "Uppercase hex digits and prefix")
	convertCmd.Flags().IntVarP(&width, "width", "w", 0, "Minimum field width")
	convertCmd.Flags().StringVar(&fill, "fill", " ", "Fill character used to reach the field width")
	convertCmd.Flags().StringVar(&adjust, "adjust", "right", "Padding placement: left, right, or internal")
	convertCmd.Flags().IntVar(&group, "group", 0, "Digit group size (0 disables grouping)")
	convertCmd.Flags().StringVar(&sep, "sep", ",", "Thousands separator used between digit groups")

	// constants command
	constantsCmd := &cobra.Command{
		Use:   "constants <registry.toml> [name...]",
		Short: "Resolve named 128-bit constants from a TOML registry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			reg, err := config.Load(f)
			if err != nil {
				return err
			}

			names := args[1:]
			if len(names) == 0 {
				for name := range reg.Constants {
					names = append(names, name)
				}
				sort.Strings(names)
			}

			for _, name := range names {
				var rendered string

				if signed {
					v, err := reg.DecodeI128(name)
					if err != nil {
						return err
					}
					rendered = v.String()
				} else {
					v, err := reg.DecodeU128(name)
					if err != nil {
						return err
					}
					rendered = v.String()
				}

				fmt.Printf("%s = %s\n", name, rendered)
			}

			return nil
		},
	}

	rootCmd.AddCommand(addCmd, subCmd, mulCmd, divCmd, convertCmd, constantsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
