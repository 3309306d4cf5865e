package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/startour/pointio"
	"github.com/katalvlaran/startour/tsp"
)

var errNoTour = errors.New("eval: one of --tour or --tour-file is required")

func newEvalCmd(a *app) *cobra.Command {
	var tourText, tourFile string

	cmd := &cobra.Command{
		Use:   "eval <points-file>",
		Short: "Compute the closed length of a given tour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (tourText == "") == (tourFile == "") {
				return errNoTour
			}
			if tourFile != "" {
				raw, err := os.ReadFile(tourFile)
				if err != nil {
					return fmt.Errorf("eval: %w", err)
				}
				tourText = string(raw)
			}

			pts, err := a.loadPoints(args[0])
			if err != nil {
				return err
			}
			parse := pointio.ParseTour
			if a.oneBased {
				parse = pointio.ParseTourOneBased
			}
			tour, err := parse(tourText, len(pts))
			if err != nil {
				return err
			}

			dist, err := tsp.NewDistanceMatrix(pts)
			if err != nil {
				return err
			}
			length, err := tsp.TourLength(dist, tour)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"points": len(pts), "length": length}).Debug("tour evaluated")

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "length %s\n", strconv.FormatFloat(length, 'f', 6, 64))

			return err
		},
	}

	cmd.Flags().StringVar(&tourText, "tour", "", `tour as indices, e.g. "0 3 1 2" or "[0, 3, 1, 2]"`)
	cmd.Flags().StringVar(&tourFile, "tour-file", "", "read the tour from this file")

	return cmd
}
