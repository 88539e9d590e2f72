// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/vortexje/vortexje/geom"
)

// NewSphere returns a non-lifting UV-sphere surface of the given
// radius, with nLat latitude bands running pole to pole and nLon
// longitude panels wrapping around — the sphere-in-uniform-flow
// scenario of §11. Node row 0 is the south pole and row nLat the north
// pole, so that Grid's corner winding yields outward panel normals.
func NewSphere(id string, radius float64, nLat, nLon int) *Grid {
	nodes := make([]geom.Vec3, (nLat+1)*nLon)
	for row := 0; row <= nLat; row++ {
		theta := math.Pi * float64(nLat-row) / float64(nLat)
		for col := 0; col < nLon; col++ {
			phi := 2 * math.Pi * float64(col) / float64(nLon)
			nodes[row*nLon+col] = geom.Vec3{
				radius * math.Sin(theta) * math.Cos(phi),
				radius * math.Sin(theta) * math.Sin(phi),
				radius * math.Cos(theta),
			}
		}
	}
	return NewGrid(id, nLat, nLon, false, true, nodes)
}
