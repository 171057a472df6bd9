// springgen is a CLI utility for generating and exporting spring geometry.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/internal/config"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/internal/export"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/spring"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/wirepath"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "validate", "check":
		cmdValidate(args)
	case "export", "x":
		cmdExport(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`springgen - spring geometry generator

Usage:
  springgen <command> [options]

Commands:
  info <spring.yaml>      Show resolved geometry statistics
  validate <spring.yaml>  Build the wire path and report frame checks
  export <spring.yaml>    Build and write STL and/or centerline JSON
  config                  Write the default configuration file

Examples:
  springgen info spiral.yaml
  springgen validate -samples 2000 extension.yaml
  springgen export -stl spring.stl -centerline wire.json compression.yaml
  springgen config -o springgen.yaml`)
}

func buildFromFile(path string, opts spring.Options) (*spring.Result, error) {
	sf, err := config.LoadSpringFile(path)
	if err != nil {
		return nil, err
	}
	def, err := sf.Definition()
	if err != nil {
		return nil, err
	}
	return spring.Build(def, opts)
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	samples := fs.Int("samples", 0, "Sample count across the coil body")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: springgen info <spring.yaml>")
		os.Exit(1)
	}

	res, err := buildFromFile(fs.Arg(0), spring.Options{BodySamples: *samples})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := res.Solid.Bounds
	fmt.Printf("Definition:  %s\n", fs.Arg(0))
	fmt.Printf("Wire length: %.2f mm\n", wirepath.PathLength(res.Points))
	fmt.Printf("Points:      %d\n", len(res.Points))
	fmt.Printf("Triangles:   %d\n", len(res.Solid.Indices)/3)
	fmt.Printf("Bounds:      (%.2f, %.2f, %.2f) .. (%.2f, %.2f, %.2f) mm\n",
		b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
	fmt.Println()
	fmt.Println("Regions:")
	for _, r := range res.Regions {
		fmt.Printf("  %-16s %-14s [%d, %d)\n", r.Name, r.Kind, r.Start, r.End)
	}
}

func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	samples := fs.Int("samples", 0, "Sample count across the coil body")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: springgen validate <spring.yaml>")
		os.Exit(1)
	}

	res, err := buildFromFile(fs.Arg(0), spring.Options{BodySamples: *samples})
	if err != nil {
		// A frame defect still carries the full report.
		var iv *wirepath.InvariantViolation
		if errors.As(err, &iv) {
			printReport(iv.Report)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printReport(res.Report)
	if !res.Report.Valid {
		os.Exit(1)
	}
}

func printReport(rep wirepath.Report) {
	status := "OK"
	if !rep.Valid {
		status = "FAILED"
	}
	fmt.Printf("Frames checked: %d\n", rep.Checked)
	fmt.Printf("Status:         %s\n", status)

	for _, e := range rep.Errors {
		fmt.Printf("  error: %s\n", e)
	}
	for _, w := range rep.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	out := fs.String("o", "", "Write to this path instead of the user config directory")
	fs.Parse(args)

	cfg := config.Default()
	path := *out
	var err error
	if path == "" {
		path = filepath.Join(config.ConfigDir(), "config.yaml")
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	stlPath := fs.String("stl", "", "Output STL path")
	centerPath := fs.String("centerline", "", "Output centerline JSON path")
	name := fs.String("name", "spring", "Solid name embedded in the STL header")
	samples := fs.Int("samples", 0, "Sample count across the coil body")
	segments := fs.Int("segments", 0, "Circular cross-section segments")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: springgen export [-stl out.stl] [-centerline out.json] <spring.yaml>")
		os.Exit(1)
	}
	if *stlPath == "" && *centerPath == "" {
		// Default to an STL next to the definition file.
		base := strings.TrimSuffix(filepath.Base(fs.Arg(0)), filepath.Ext(fs.Arg(0)))
		*stlPath = base + ".stl"
	}

	res, err := buildFromFile(fs.Arg(0), spring.Options{
		BodySamples:     *samples,
		SectionSegments: *segments,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *stlPath != "" {
		if err := export.SaveSTL(*stlPath, *name, res.Solid); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing STL: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d triangles)\n", *stlPath, len(res.Solid.Indices)/3)
	}

	if *centerPath != "" {
		if err := export.SaveCenterline(*centerPath, res.Points, res.Regions); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing centerline: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d points)\n", *centerPath, len(res.Points))
	}
}
