// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"candlechart/chartval"
	"candlechart/config"
	"candlechart/layerapi/layers/bollinger"
	"candlechart/render"
)

func main() {
	in := flag.String("in", "", "CSV input with one open,high,low,close record per bar")
	out := flag.String("out", "chart.png", "PNG output path")
	title := flag.String("title", "", "chart title")
	priceGrid := flag.Float64("price-grid", 0, "price distance between horizontal grid lines, 0 disables")
	timeGrid := flag.Float64("time-grid", 0, "seconds between vertical grid lines, 0 disables")
	bands := flag.Int("bollinger", 0, "period count of a Bollinger Bands overlay, 0 disables")
	verbose := flag.Bool("v", false, "log render diagnostics")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = zerolog.Nop()
	}

	if *in == "" {
		fmt.Fprintln(os.Stderr, "missing -in file")
		flag.Usage()
		os.Exit(2)
	}
	bars, err := readBars(*in)
	if err != nil {
		log.Error().Err(err).Msg("failed to read bars")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.NewStoredConfig().Copy()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	opts := cfg.BuildOptions()
	if *title != "" {
		opts = opts.WithTitle(*title, opts.TextColor)
	}
	if *priceGrid > 0 || *timeGrid > 0 {
		h := opts.HAxis
		v := opts.VAxis
		h.LineInterval = *timeGrid
		h.LabelFrequency = 1
		v.LineInterval = *priceGrid
		v.LabelFrequency = 1
		opts = opts.WithAxisOptions(h, v)
	}
	if *bands > 0 {
		opts = opts.WithLayer(bollinger.New(*bands, 2, color.NRGBA{R: 255, G: 210, B: 0, A: 255}))
	}

	r := render.New(opts)
	r.SetLogger(log)
	if err := r.RenderAndSave(bars, *out); err != nil {
		log.Error().Err(err).Msg("render failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readBars(path string) ([]chartval.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	bars := make([]chartval.Bar, 0, len(records))
	for i, rec := range records {
		if len(rec) < 4 {
			return nil, fmt.Errorf("record %d has %d fields, need open,high,low,close", i, len(rec))
		}
		var values [4]float64
		for j := 0; j < 4; j++ {
			values[j], err = strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("record %d field %d: %v", i, j, err)
			}
		}
		bars = append(bars, chartval.Bar{
			Open:  values[0],
			High:  values[1],
			Low:   values[2],
			Close: values[3],
		})
	}
	return bars, nil
}
