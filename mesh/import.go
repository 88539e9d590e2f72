// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/vortexje/vortexje/geom"
)

// meshFile is the on-disk JSON schema for an imported surface: a flat
// node list, the four node indices of each quadrilateral panel, and
// each panel's grid neighbours (adapted from inp.Cell's Neighs field:
// "neighbours; e.g. [3,7,-1,11] => side:cid", -1 meaning no neighbour
// on that side), used only by ScalarFieldGradient's finite difference.
type meshFile struct {
	Nodes  [][3]float64 `json:"nodes"`
	Panels [][4]int     `json:"panels"`
	Neighs [][4]int     `json:"neighs"`
}

// ImportedSurface is a non-lifting geom.Surface built from an
// arbitrary (non-structured) quadrilateral panel mesh read from disk —
// the escape hatch for geometry that doesn't fit NewSphere/NewWing's
// structured grids.
type ImportedSurface struct {
	PanelMesh
}

// LoadSurface reads a mesh file in the meshFile JSON schema and
// returns it as an ImportedSurface with the given identity.
func LoadSurface(id, path string) (*ImportedSurface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("mesh: cannot open %q:\n%v", path, err)
	}
	defer f.Close()

	var mf meshFile
	if err := json.NewDecoder(f).Decode(&mf); err != nil {
		return nil, chk.Err("mesh: cannot decode %q:\n%v", path, err)
	}
	if len(mf.Panels) != len(mf.Neighs) {
		return nil, chk.Err("mesh: %q has %d panels but %d neighbour records", path, len(mf.Panels), len(mf.Neighs))
	}

	nodes := make([]geom.Vec3, len(mf.Nodes))
	for i, c := range mf.Nodes {
		nodes[i] = geom.Vec3{c[0], c[1], c[2]}
	}

	s := &ImportedSurface{}
	s.PanelMesh = PanelMesh{
		id:        id,
		numPanels: len(mf.Panels),
		nodes:     nodes,
		cornerIdx: func(panel int) [4]int { return mf.Panels[panel] },
		neighborsFn: func(panel int) (uPrev, uNext, vPrev, vNext int) {
			n := mf.Neighs[panel]
			return n[0], n[1], n[2], n[3]
		},
	}

	io.Pf("mesh: loaded %q: %d nodes, %d panels\n", path, len(nodes), len(mf.Panels))
	return s, nil
}
