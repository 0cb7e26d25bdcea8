// Command simplegeom computes distances, polyline projections and WKT
// renderings for simple planar or geographic geometries from the command
// line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/NERVsystems/simplegeom/pkg/geom"
	"github.com/NERVsystems/simplegeom/pkg/geomjson"
	"github.com/NERVsystems/simplegeom/pkg/version"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	app := &app{out: os.Stdout, logger: logger, level: level}
	if err := app.command().Run(context.Background(), os.Args); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// app carries the output writer and logger so that tests can capture both.
type app struct {
	out    io.Writer
	logger *slog.Logger
	level  *slog.LevelVar
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:  "simplegeom",
		Usage: "Distance and projection calculations for points, segments and polylines",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "distance",
				Usage:     "Compute the distance between two points",
				ArgsUsage: "<x,y[,z]> <x,y[,z]>",
				Flags: []cli.Flag{
					flavorFlag(),
					timeFlag(),
				},
				Action: a.distance,
			},
			{
				Name:      "project",
				Usage:     "Project a point onto a polyline",
				ArgsUsage: "<x,y[,z]> <vertex> <vertex> [vertex...]",
				Flags: []cli.Flag{
					flavorFlag(),
					timeFlag(),
					&cli.StringFlag{
						Name:  "mode",
						Usage: "Along-line distance mode: simple or accumulate",
						Value: "accumulate",
					},
					&cli.StringFlag{
						Name:  "geojson",
						Usage: "Read the polyline from a GeoJSON LineString geometry instead of vertex arguments",
					},
				},
				Action: a.project,
			},
			{
				Name:      "wkt",
				Usage:     "Format a point (one argument) or polyline (several) as Well-Known Text",
				ArgsUsage: "<x,y[,z]> [x,y[,z]...]",
				Flags: []cli.Flag{
					flavorFlag(),
				},
				Action: a.wkt,
			},
			{
				Name:  "version",
				Usage: "Display version information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Fprintln(a.out, version.String())
					return nil
				},
			},
		},
	}
}

func flavorFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "flavor",
		Usage: "Coordinate flavor: planar or geographic",
		Value: "planar",
	}
}

func timeFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "time",
		Usage: "Print the elapsed computation time",
	}
}

func (a *app) setup(cmd *cli.Command) {
	if cmd.Bool("debug") {
		a.level.Set(slog.LevelDebug)
	}
	attrs := make([]any, 0, 8)
	for key, value := range version.Info() {
		attrs = append(attrs, key, value)
	}
	a.logger.Debug("starting simplegeom", attrs...)
}

func (a *app) distance(ctx context.Context, cmd *cli.Command) error {
	a.setup(cmd)

	flavor, err := parseFlavor(cmd.String("flavor"))
	if err != nil {
		return err
	}
	args := cmd.Args().Slice()
	if len(args) != 2 {
		return errors.New("distance requires exactly two points")
	}
	p1, err := parsePoint(args[0], flavor)
	if err != nil {
		return err
	}
	p2, err := parsePoint(args[1], flavor)
	if err != nil {
		return err
	}
	a.logger.Debug("computing distance", "flavor", flavor.String(), "a", args[0], "b", args[1])

	start := time.Now()
	d := geom.Distance(p1, p2)
	elapsed := time.Since(start)

	fmt.Fprintf(a.out, "%.10f\n", d)
	if cmd.Bool("time") {
		fmt.Fprintf(a.out, "distance cost: %s\n", elapsed)
	}
	return nil
}

func (a *app) project(ctx context.Context, cmd *cli.Command) error {
	a.setup(cmd)

	flavor, err := parseFlavor(cmd.String("flavor"))
	if err != nil {
		return err
	}
	mode, err := parseMode(cmd.String("mode"))
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	if len(args) < 1 {
		return errors.New("project requires a query point")
	}
	point, err := parsePoint(args[0], flavor)
	if err != nil {
		return err
	}

	var line geom.Polyline
	if geoJSON := cmd.String("geojson"); geoJSON != "" {
		line, err = geomjson.DecodePolyline([]byte(geoJSON), flavor)
		if err != nil {
			return errors.Wrap(err, "could not read polyline")
		}
	} else {
		for _, arg := range args[1:] {
			vertex, err := parsePoint(arg, flavor)
			if err != nil {
				return err
			}
			line = append(line, vertex)
		}
	}
	a.logger.Debug("projecting point", "flavor", flavor.String(), "vertices", len(line))

	start := time.Now()
	perpendicular, along := line.Project(point, mode)
	elapsed := time.Since(start)

	fmt.Fprintf(a.out, "%.10f %.10f\n", perpendicular, along)
	if cmd.Bool("time") {
		fmt.Fprintf(a.out, "proj distance cost: %s\n", elapsed)
	}
	return nil
}

func (a *app) wkt(ctx context.Context, cmd *cli.Command) error {
	a.setup(cmd)

	flavor, err := parseFlavor(cmd.String("flavor"))
	if err != nil {
		return err
	}
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return errors.New("wkt requires at least one point")
	}

	if len(args) == 1 {
		p, err := parsePoint(args[0], flavor)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, p.MarshalWKT())
		return nil
	}

	line := make(geom.Polyline, 0, len(args))
	for _, arg := range args {
		vertex, err := parsePoint(arg, flavor)
		if err != nil {
			return err
		}
		line = append(line, vertex)
	}
	fmt.Fprintln(a.out, line.MarshalWKT())
	return nil
}

func parseFlavor(s string) (geom.Flavor, error) {
	switch strings.ToLower(s) {
	case "planar":
		return geom.Planar, nil
	case "geographic", "geo":
		return geom.Geographic, nil
	default:
		return 0, errors.Errorf("unknown flavor %q, expected planar or geographic", s)
	}
}

func parseMode(s string) (geom.ProjectionMode, error) {
	switch strings.ToLower(s) {
	case "simple":
		return geom.Simple, nil
	case "accumulate":
		return geom.Accumulate, nil
	default:
		return 0, errors.Errorf("unknown mode %q, expected simple or accumulate", s)
	}
}

// parsePoint reads a comma-separated coordinate list, e.g. "13.4,52.5" or
// "1,2,3".
func parsePoint(s string, flavor geom.Flavor) (geom.Point, error) {
	parts := strings.Split(s, ",")
	coords := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geom.Point{}, errors.Wrapf(err, "could not parse coordinate %q", part)
		}
		coords = append(coords, v)
	}
	p, err := geom.NewPoint(flavor, coords...)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid point %q", s)
	}
	return p, nil
}
