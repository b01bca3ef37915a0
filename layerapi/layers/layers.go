// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"image/color"
	"sort"

	"golang.org/x/exp/maps"

	"candlechart/layerapi"
	"candlechart/layerapi/layers/bollinger"
	"candlechart/layerapi/layers/session"
	"candlechart/layerapi/layers/sma"
)

const DefaultId = "bollinger"

var LayerRegistry map[layerapi.LayerId]func() layerapi.Layer = make(map[layerapi.LayerId]func() layerapi.Layer)

func init() {
	LayerRegistry[bollinger.Id] = bollinger.NewLayer
	LayerRegistry[sma.Id] = sma.NewLayer
	LayerRegistry[session.Id] = session.NewLayer
}

type colorable interface {
	SetColor(color.NRGBA)
}

func Create(id layerapi.LayerId, properties map[string]string, c color.NRGBA) layerapi.Layer {
	f, ok := LayerRegistry[id]
	if !ok {
		panic("invalid layer name")
	}
	l := f()
	if cfg, ok := l.(layerapi.Configurable); ok {
		cfg.SetProperties(properties)
	}
	if col, ok := l.(colorable); ok {
		col.SetColor(c)
	}
	return l
}

func GetDefaultProperties(id layerapi.LayerId) map[string]string {
	f, ok := LayerRegistry[id]
	if !ok {
		panic("invalid layer name")
	}
	if cfg, ok := f().(layerapi.Configurable); ok {
		return cfg.GetProperties()
	}
	return nil
}

func GetList() layerapi.LayerList {
	l := layerapi.LayerList(maps.Keys(LayerRegistry))
	sort.Sort(l)
	return l
}
